package model

// Phase represents where the acquisition pipeline currently is
type Phase string

const (
	// PhaseIdle means nothing has been requested yet
	PhaseIdle Phase = "Idle"

	// PhaseLoadingImage means the image chain is running
	PhaseLoadingImage Phase = "LoadingImage"

	// PhaseImageReady means a photo (remote, local or none) was committed
	PhaseImageReady Phase = "ImageReady"

	// PhaseLoadingQuote means the quote request is in flight
	PhaseLoadingQuote Phase = "LoadingQuote"

	// PhaseQuoteReady means the quote text is available for display
	PhaseQuoteReady Phase = "QuoteReady"

	// PhaseTyping means the quote is being revealed character by character
	PhaseTyping Phase = "Typing"

	// PhaseTranslationReady means the translated line may be shown
	PhaseTranslationReady Phase = "TranslationReady"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsLoading returns true while the image chain is running
func (p Phase) IsLoading() bool {
	return p == PhaseLoadingImage
}

// HasQuote returns true once a quote has been committed for the current run
func (p Phase) HasQuote() bool {
	return p == PhaseQuoteReady || p == PhaseTyping || p == PhaseTranslationReady
}

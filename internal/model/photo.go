package model

import "errors"

// ErrMissingAuthor is returned when a remote photo has no attribution
var ErrMissingAuthor = errors.New("remote photo requires an author name")

// Photo is the result of the image acquisition chain.
//
// Remote photos always carry an author; local photos never carry a title,
// an author or an avatar.
type Photo struct {
	Image      []byte
	Title      string
	AuthorName string
	Avatar     []byte // optional, remote only
	IsRemote   bool
	Source     string // image URL for remote photos, asset name for local ones
}

// NewRemotePhoto builds a photo fetched from the photo service
func NewRemotePhoto(image []byte, title, author string, avatar []byte, source string) (*Photo, error) {
	if author == "" {
		return nil, ErrMissingAuthor
	}
	return &Photo{
		Image:      image,
		Title:      title,
		AuthorName: author,
		Avatar:     avatar,
		IsRemote:   true,
		Source:     source,
	}, nil
}

// NewLocalPhoto builds a photo from the bundled fallback set
func NewLocalPhoto(image []byte, name string) *Photo {
	return &Photo{
		Image:  image,
		Source: name,
	}
}

// HasAvatar returns true if an attribution avatar was downloaded
func (p *Photo) HasAvatar() bool {
	return p != nil && len(p.Avatar) > 0
}

// Attribution returns the "by author" line, or "" for local photos
func (p *Photo) Attribution() string {
	if p == nil || !p.IsRemote {
		return ""
	}
	return "by " + p.AuthorName
}

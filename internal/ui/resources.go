package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/inspiration/internal/model"
)

// photoResource wraps the photo bytes for canvas.Image. The name varies per
// photo so the image cache does not return a previous picture.
func photoResource(p *model.Photo) fyne.Resource {
	name := "local-" + p.Source
	if p.IsRemote {
		name = "remote-" + p.Source
	}
	return fyne.NewStaticResource(name, p.Image)
}

// avatarResource wraps the avatar bytes, or returns nil when there is none
func avatarResource(p *model.Photo) fyne.Resource {
	if !p.HasAvatar() {
		return nil
	}
	return fyne.NewStaticResource("avatar-"+p.AuthorName, p.Avatar)
}

package section

import (
	"bytes"
	"html/template"
	"io/fs"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Zachkp/cyber-portfolio/internal/portfolio"
)

// Image is an image reference that may have failed to load. A hidden image
// is left out of the markup but its container stays.
type Image struct {
	Src    string
	Alt    string
	Hidden bool
}

// ResolveImage checks ref against fsys. Refs are site paths such as
// "/images/me.png"; the leading "/images/" is stripped before the lookup.
// A nil fsys, an empty ref or a missing file all hide the image.
func ResolveImage(fsys fs.FS, ref, alt string) Image {
	img := Image{Src: ref, Alt: alt}
	if fsys == nil || ref == "" {
		img.Hidden = true
		return img
	}

	name := strings.TrimPrefix(strings.TrimPrefix(ref, "/"), "images/")
	info, err := fs.Stat(fsys, name)
	if err != nil || info.IsDir() {
		img.Hidden = true
	}
	return img
}

// AboutView is everything the about section needs.
type AboutView struct {
	Personal   portfolio.PersonalInfo
	Image      Image
	Body       template.HTML
	Highlights []Fragment[portfolio.Highlight]
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Typographer))

// About renders the about text as markdown and resolves the profile image
// against images.
func About(s *portfolio.Store, images fs.FS) (view AboutView, err error) {
	personal := s.Personal()

	var buf bytes.Buffer
	err = markdown.Convert([]byte(s.About()), &buf)
	if err != nil {
		err = errors.Wrap(err, "failed to render about text")
		return view, err
	}

	view = AboutView{
		Personal: personal,
		Image:    ResolveImage(images, personal.Image, personal.Name),
		Body:     template.HTML(buf.String()),
	}
	for f := range Reveal(s.Highlights()) {
		view.Highlights = append(view.Highlights, f)
	}

	return view, err
}

package view

import (
	"image"

	"github.com/soocke/gallery-picker-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// GalleryPreview shows the annotated gallery frame next to a zoomed crop of
// the currently drawn cell. It owns two LabelWidgets and provides methods to
// update or reset them.
type GalleryPreview interface {
	UpdateGallery(img image.Image)
	UpdateCell(img image.Image)
	ClearCell()
	Reset()
}

type galleryPreview struct {
	galleryLabel *LabelWidget
	cellLabel    *LabelWidget
	// Last Tk photo instances; disposed before replacement so off-screen
	// image data does not accumulate.
	prevGalleryPhoto *Img
	prevCellPhoto    *Img
}

const (
	placeholderW = 320
	placeholderH = 180
	cellHolderW  = 160
	cellHolderH  = 160
)

// NewGalleryPreview creates the preview labels and grids them into the given
// row. Layout: gallery spans columns 0-3; the cell zoom sits at column 4.
func NewGalleryPreview(row int) GalleryPreview {
	galleryPhoto := NewPhoto(Data(placeholderPNG(placeholderW, placeholderH)))
	cellPhoto := NewPhoto(Data(placeholderPNG(cellHolderW, cellHolderH)))
	gallery := Label(Image(galleryPhoto), Borderwidth(1), Relief("sunken"))
	cell := Label(Image(cellPhoto), Borderwidth(1), Relief("sunken"))
	Grid(gallery, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	Grid(cell, Row(row), Column(4), Columnspan(1), Sticky("ne"), Padx("0.4m"), Pady("0.4m"))
	return &galleryPreview{
		galleryLabel:     gallery,
		cellLabel:        cell,
		prevGalleryPhoto: galleryPhoto,
		prevCellPhoto:    cellPhoto,
	}
}

func placeholderPNG(w, h int) []byte {
	return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func (v *galleryPreview) UpdateGallery(img image.Image) {
	if v.galleryLabel == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if v.prevGalleryPhoto != nil {
		v.prevGalleryPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevGalleryPhoto = photo
	v.galleryLabel.Configure(Image(photo))
}

func (v *galleryPreview) UpdateCell(img image.Image) {
	if v.cellLabel == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if v.prevCellPhoto != nil {
		v.prevCellPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevCellPhoto = photo
	v.cellLabel.Configure(Image(photo))
}

func (v *galleryPreview) ClearCell() {
	if v.cellLabel == nil {
		return
	}
	if v.prevCellPhoto != nil {
		v.prevCellPhoto.Delete()
	}
	v.prevCellPhoto = NewPhoto(Data(placeholderPNG(cellHolderW, cellHolderH)))
	v.cellLabel.Configure(Image(v.prevCellPhoto))
}

func (v *galleryPreview) Reset() {
	if v.galleryLabel != nil {
		if v.prevGalleryPhoto != nil {
			v.prevGalleryPhoto.Delete()
		}
		v.prevGalleryPhoto = NewPhoto(Data(placeholderPNG(placeholderW, placeholderH)))
		v.galleryLabel.Configure(Image(v.prevGalleryPhoto))
	}
	v.ClearCell()
}

package controllers

import (
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"

	"minisite/app/auth"
	"minisite/app/models"
	"minisite/app/repositories"
	"minisite/app/services"
)

// maxUploadBytes caps how much of an upload is held in memory before
// spilling to a temp file.
const maxUploadBytes = 10 << 20

// GalleryController handles the image gallery and uploads.
type GalleryController struct {
	galleryService *services.GalleryService
	sessions       *auth.Manager
	templates      map[string]*template.Template
}

// SetService sets the gallery service for testing
func (gc *GalleryController) SetService(service *services.GalleryService) {
	gc.galleryService = service
}

// NewGalleryControllerWithDB creates a new GalleryController with a DB instance
func NewGalleryControllerWithDB(db *badger.DB, sessions *auth.Manager, mediaDir, basePath string) *GalleryController {
	imageRepo := repositories.NewBadgerImageRepository(db)

	return &GalleryController{
		galleryService: services.NewGalleryService(imageRepo, mediaDir),
		sessions:       sessions,
		templates:      loadGalleryTemplates(basePath),
	}
}

// loadGalleryTemplates loads and parses all templates
func loadGalleryTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/gallery/index.html"),
	))
	templates["upload"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/gallery/upload.html"),
	))
	templates["success"] = template.Must(template.ParseFiles(
		filepath.Join(basePath, "app/views/layout.html"),
		filepath.Join(basePath, "app/views/gallery/success.html"),
	))
	return templates
}

type galleryIndexPage struct {
	Base
	Images []*models.Image
}

type galleryUploadPage struct {
	Base
	Form   url.Values
	Errors map[string]string
}

// Index displays all uploaded images, newest first
func (gc *GalleryController) Index(w http.ResponseWriter, r *http.Request) {
	images, err := gc.galleryService.ListImages()
	if err != nil {
		log.Error().Err(err).Msg("failed to list gallery images")
		http.Error(w, "Failed to load gallery", http.StatusInternalServerError)
		return
	}

	data := galleryIndexPage{
		Base:   newBase(gc.sessions, w, r),
		Images: images,
	}
	render(w, gc.templates["index"], data)
}

// UploadForm displays the upload form
func (gc *GalleryController) UploadForm(w http.ResponseWriter, r *http.Request) {
	data := galleryUploadPage{
		Base: newBase(gc.sessions, w, r),
		Form: url.Values{},
	}
	render(w, gc.templates["upload"], data)
}

// Upload handles image upload form submission
func (gc *GalleryController) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	description := strings.TrimSpace(r.FormValue("description"))

	file, header, err := r.FormFile("image")
	if err != nil {
		gc.renderUpload(w, r, description, map[string]string{"image": "This field is required."})
		return
	}
	defer file.Close()

	_, err = gc.galleryService.SaveUpload(file, header.Filename, description)
	switch {
	case err == nil:
		http.Redirect(w, r, "/gallery/success", http.StatusSeeOther)
	case err == services.ErrNotImage:
		gc.renderUpload(w, r, description, map[string]string{
			"image": "Upload a valid image. The file you uploaded was either not an image or a corrupted image.",
		})
	default:
		gc.renderUpload(w, r, description, fieldErrors(err))
	}
}

// Success displays the post-upload confirmation page
func (gc *GalleryController) Success(w http.ResponseWriter, r *http.Request) {
	data := struct{ Base }{newBase(gc.sessions, w, r)}
	render(w, gc.templates["success"], data)
}

func (gc *GalleryController) renderUpload(w http.ResponseWriter, r *http.Request, description string, errs map[string]string) {
	form := url.Values{}
	form.Set("description", description)

	data := galleryUploadPage{
		Base:   newBase(gc.sessions, w, r),
		Form:   form,
		Errors: errs,
	}
	render(w, gc.templates["upload"], data)
}

package server

import (
	"net/http"

	"articleflow/store"
)

// ===== Images =====

type imagesResp struct {
	Images []*store.ImageRecord `json:"images"`
	Done   int                  `json:"done"`
	Total  int                  `json:"total"`
}

func (s *Server) handleImagesList(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.store.Project(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	imgs, err := s.store.Images(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	done := 0
	for _, img := range imgs {
		if img.Status == store.ImageDone {
			done++
		}
	}
	writeJSON(w, http.StatusOK, imagesResp{Images: imgs, Done: done, Total: len(imgs)})
}

// handleImagesSeed creates pending image records from the validated
// image-prompt output. Seeding twice is a no-op for existing entries.
func (s *Server) handleImagesSeed(w http.ResponseWriter, r *http.Request) {
	imgs, err := s.images.SeedFromStep(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, imgs)
}

func (s *Server) handleImagesGenerateAll(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.images.GenerateAll(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	imgs, err := s.store.Images(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, imgs)
}

func (s *Server) handleImageGenerateOne(w http.ResponseWriter, r *http.Request) {
	img, err := s.images.GenerateOne(r.Context(), r.PathValue("id"), r.PathValue("imageID"))
	if err != nil {
		if img != nil {
			// Provider failure: the record carries the error and can
			// be retried later.
			writeJSON(w, http.StatusBadGateway, img)
			return
		}
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, img)
}

package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/recipeshare/internal/client/models"
)

// encodeRecipeForm builds the multipart body for recipe create and update.
// The image part is only present when the form names a file.
func encodeRecipeForm(form models.RecipeForm) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"title", form.Title},
		{"description", form.Description},
		{"ingredients", form.IngredientsValue()},
		{"instructions", form.Instructions},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}
	if form.ImageRemoved && form.ImagePath == "" {
		if err := w.WriteField("image_removed", "true"); err != nil {
			return nil, "", fmt.Errorf("write field image_removed: %w", err)
		}
	}

	if form.ImagePath != "" {
		if err := writeImage(w, form.ImagePath); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func writeImage(w *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrImageMissing, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create image part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy image: %w", err)
	}
	return nil
}

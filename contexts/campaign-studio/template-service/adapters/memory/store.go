package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"agencyx/contexts/campaign-studio/template-service/domain/entities"
	domainerrors "agencyx/contexts/campaign-studio/template-service/domain/errors"
	"agencyx/contexts/campaign-studio/template-service/ports"
)

type Store struct {
	mu        sync.Mutex
	templates map[string]entities.Template
	objects   map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		templates: make(map[string]entities.Template),
		objects:   make(map[string]struct{}),
	}
}

var _ ports.Repository = (*Store)(nil)
var _ ports.ObjectStore = (*Store)(nil)

func (s *Store) CreateTemplate(_ context.Context, template entities.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[template.TemplateID] = template
	return nil
}

func (s *Store) GetTemplate(_ context.Context, templateID string) (entities.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	template, ok := s.templates[templateID]
	if !ok {
		return entities.Template{}, domainerrors.ErrTemplateNotFound
	}
	return template, nil
}

func (s *Store) UpdateTemplate(_ context.Context, template entities.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[template.TemplateID]; !ok {
		return domainerrors.ErrTemplateNotFound
	}
	s.templates[template.TemplateID] = template
	return nil
}

func (s *Store) ListTemplates(_ context.Context, niche string, limit int) ([]entities.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates := make([]entities.Template, 0)
	for _, template := range s.templates {
		if template.Status != entities.TemplateStatusStored {
			continue
		}
		if niche != "" && template.Niche != niche {
			continue
		}
		templates = append(templates, template)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].CreatedAt.After(templates[j].CreatedAt)
	})
	if limit > 0 && len(templates) > limit {
		templates = templates[:limit]
	}
	return templates, nil
}

func (s *Store) PresignUpload(_ context.Context, objectPath string, _ time.Duration) (string, error) {
	return "https://uploads.example.test/" + objectPath + "?signature=dev", nil
}

func (s *Store) PresignDownload(_ context.Context, objectPath string, _ time.Duration) (string, error) {
	return "https://uploads.example.test/" + objectPath + "?signature=dev-get", nil
}

func (s *Store) ObjectExists(_ context.Context, objectPath string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[objectPath]
	return ok, nil
}

// PutObject marks an asset as uploaded. Test helper standing in for the
// client's PUT against the presigned URL.
func (s *Store) PutObject(objectPath string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectPath] = struct{}{}
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"careerhub/internal/repository"
)

// memoryCVRepo keeps CVs in insertion order and mirrors the store's
// main-flag behavior: SetMain demotes the previous main, PromoteNewest
// promotes the most recently created CV.
type memoryCVRepo struct {
	cvs []repository.CV
}

func (m *memoryCVRepo) Create(_ context.Context, cv repository.CV) (repository.CV, error) {
	if cv.CreatedAt.IsZero() {
		cv.CreatedAt = time.Now().Add(time.Duration(len(m.cvs)) * time.Second)
	}
	m.cvs = append(m.cvs, cv)
	return cv, nil
}

func (m *memoryCVRepo) CountByUser(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for _, cv := range m.cvs {
		if cv.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m *memoryCVRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]repository.CV, error) {
	var out []repository.CV
	for _, cv := range m.cvs {
		if cv.UserID == userID {
			out = append(out, cv)
		}
	}
	return out, nil
}

func (m *memoryCVRepo) GetByID(_ context.Context, id, userID uuid.UUID) (repository.CV, error) {
	for _, cv := range m.cvs {
		if cv.ID == id && cv.UserID == userID {
			return cv, nil
		}
	}
	return repository.CV{}, repository.ErrCVNotFound
}

func (m *memoryCVRepo) Update(_ context.Context, id, userID uuid.UUID, upd repository.CVUpdate) (repository.CV, error) {
	for i := range m.cvs {
		if m.cvs[i].ID == id && m.cvs[i].UserID == userID {
			if upd.Title != nil {
				m.cvs[i].Title = *upd.Title
			}
			return m.cvs[i], nil
		}
	}
	return repository.CV{}, repository.ErrCVNotFound
}

func (m *memoryCVRepo) SetMain(_ context.Context, id, userID uuid.UUID) (repository.CV, error) {
	idx := -1
	for i := range m.cvs {
		if m.cvs[i].ID == id && m.cvs[i].UserID == userID {
			idx = i
		}
	}
	if idx < 0 {
		return repository.CV{}, repository.ErrCVNotFound
	}
	for i := range m.cvs {
		if m.cvs[i].UserID == userID {
			m.cvs[i].IsMain = i == idx
		}
	}
	return m.cvs[idx], nil
}

func (m *memoryCVRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i := range m.cvs {
		if m.cvs[i].ID == id && m.cvs[i].UserID == userID {
			m.cvs = append(m.cvs[:i], m.cvs[i+1:]...)
			return nil
		}
	}
	return repository.ErrCVNotFound
}

func (m *memoryCVRepo) PromoteNewest(_ context.Context, userID uuid.UUID) error {
	idx := -1
	for i := range m.cvs {
		if m.cvs[i].UserID != userID {
			continue
		}
		if idx < 0 || m.cvs[i].CreatedAt.After(m.cvs[idx].CreatedAt) {
			idx = i
		}
	}
	if idx >= 0 {
		m.cvs[idx].IsMain = true
	}
	return nil
}

func (m *memoryCVRepo) mainFor(userID uuid.UUID) []repository.CV {
	var out []repository.CV
	for _, cv := range m.cvs {
		if cv.UserID == userID && cv.IsMain {
			out = append(out, cv)
		}
	}
	return out
}

func TestCreateCV_FirstBecomesMain(t *testing.T) {
	repo := &memoryCVRepo{}
	uc := NewCVUsecase(repo)
	userID := uuid.New()

	first, err := uc.Create(context.Background(), userID, CreateCVInput{Title: "Backend CV"})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if !first.IsMain {
		t.Fatalf("expected first CV to be main")
	}

	second, err := uc.Create(context.Background(), userID, CreateCVInput{Title: "Frontend CV"})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if second.IsMain {
		t.Fatalf("second CV must not replace the main flag")
	}

	mains := repo.mainFor(userID)
	if len(mains) != 1 || mains[0].ID != first.ID {
		t.Fatalf("expected exactly one main CV (the first), got %d", len(mains))
	}
}

func TestCreateCV_LimitReached(t *testing.T) {
	repo := &memoryCVRepo{}
	uc := NewCVUsecase(repo)
	userID := uuid.New()

	for i := 0; i < maxCVsPerUser; i++ {
		if _, err := uc.Create(context.Background(), userID, CreateCVInput{Title: "CV"}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	_, err := uc.Create(context.Background(), userID, CreateCVInput{Title: "one too many"})
	if !errors.Is(err, ErrCVLimitReached) {
		t.Fatalf("expected ErrCVLimitReached, got %v", err)
	}
}

func TestSetMainCV_DemotesPrevious(t *testing.T) {
	repo := &memoryCVRepo{}
	uc := NewCVUsecase(repo)
	userID := uuid.New()

	first, _ := uc.Create(context.Background(), userID, CreateCVInput{Title: "old main"})
	second, _ := uc.Create(context.Background(), userID, CreateCVInput{Title: "new main"})

	promoted, err := uc.SetMain(context.Background(), userID, second.ID)
	if err != nil {
		t.Fatalf("set main: %v", err)
	}
	if !promoted.IsMain {
		t.Fatalf("expected promoted CV to be main")
	}

	mains := repo.mainFor(userID)
	if len(mains) != 1 {
		t.Fatalf("expected exactly one main CV, got %d", len(mains))
	}
	if mains[0].ID != second.ID || mains[0].ID == first.ID {
		t.Fatalf("wrong CV holds the main flag")
	}
}

func TestDeleteCV_MainPromotesNewestRemaining(t *testing.T) {
	repo := &memoryCVRepo{}
	uc := NewCVUsecase(repo)
	userID := uuid.New()

	main, _ := uc.Create(context.Background(), userID, CreateCVInput{Title: "main"})
	uc.Create(context.Background(), userID, CreateCVInput{Title: "older"})
	newest, _ := uc.Create(context.Background(), userID, CreateCVInput{Title: "newest"})

	if err := uc.Delete(context.Background(), userID, main.ID); err != nil {
		t.Fatalf("delete main: %v", err)
	}

	mains := repo.mainFor(userID)
	if len(mains) != 1 {
		t.Fatalf("expected exactly one main CV after delete, got %d", len(mains))
	}
	if mains[0].ID != newest.ID {
		t.Fatalf("expected newest remaining CV to be promoted, got %q", mains[0].Title)
	}
}

func TestDeleteCV_NonMainKeepsMain(t *testing.T) {
	repo := &memoryCVRepo{}
	uc := NewCVUsecase(repo)
	userID := uuid.New()

	main, _ := uc.Create(context.Background(), userID, CreateCVInput{Title: "main"})
	extra, _ := uc.Create(context.Background(), userID, CreateCVInput{Title: "extra"})

	if err := uc.Delete(context.Background(), userID, extra.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	mains := repo.mainFor(userID)
	if len(mains) != 1 || mains[0].ID != main.ID {
		t.Fatalf("main flag must survive deleting a non-main CV")
	}
}

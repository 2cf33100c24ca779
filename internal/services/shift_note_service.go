package services

import (
	"crm_backend/internal/idgen"
	"crm_backend/internal/models"
	"crm_backend/internal/repository"
)

type ShiftNoteService interface {
	GetAllShiftNotes() ([]models.ShiftNote, error)
	CreateShiftNote(note *models.ShiftNote) error
	UpdateShiftNote(id string, content string, isActive bool) (*models.ShiftNote, error)
}

type shiftNoteService struct {
	shiftNoteRepo repository.ShiftNoteRepository
}

func NewShiftNoteService(shiftNoteRepo repository.ShiftNoteRepository) ShiftNoteService {
	return &shiftNoteService{shiftNoteRepo: shiftNoteRepo}
}

func (s *shiftNoteService) GetAllShiftNotes() ([]models.ShiftNote, error) {
	return s.shiftNoteRepo.GetAll()
}

func (s *shiftNoteService) CreateShiftNote(note *models.ShiftNote) error {
	if note.ID == "" {
		note.ID = idgen.New(idgen.PrefixShiftNote)
	}
	if err := models.Validate(note); err != nil {
		return err
	}
	return s.shiftNoteRepo.CreateAsActive(note)
}

func (s *shiftNoteService) UpdateShiftNote(id string, content string, isActive bool) (*models.ShiftNote, error) {
	return s.shiftNoteRepo.Update(id, content, isActive)
}

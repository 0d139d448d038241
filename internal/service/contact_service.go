package service

import (
	"context"

	"sharknutrition-backend/internal/models"
	"sharknutrition-backend/internal/repository"
)

type ContactService struct {
	contacts repository.ContactRepository
}

func NewContactService(contacts repository.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) Submit(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if contact.Name == "" || contact.Email == "" {
		return nil, &ValidationError{Message: "Name and email are required."}
	}
	return s.contacts.Insert(ctx, contact)
}

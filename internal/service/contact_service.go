package service

import (
	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	"studio-cms/internal/repository"
	pkgErrors "studio-cms/pkg/errors"
)

type ContactService interface {
	// Create 公开表单提交，状态固定为new
	Create(req *dto.CreateContactRequest) (*dto.ContactEnquiryResponse, error)

	AdminList(query *dto.ContactListQuery) ([]*dto.ContactEnquiryResponse, int64, error)
	AdminGet(id int64) (*dto.ContactEnquiryResponse, error)
	UpdateStatus(id int64, req *dto.UpdateEnquiryStatusRequest) (*dto.ContactEnquiryResponse, error)
	UpdateNotes(id int64, req *dto.UpdateEnquiryNotesRequest) (*dto.ContactEnquiryResponse, error)
	Delete(id int64) error
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Create(req *dto.CreateContactRequest) (*dto.ContactEnquiryResponse, error) {
	enquiry := &model.ContactEnquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  model.EnquiryStatusNew,
	}
	if err := s.repo.Create(enquiry); err != nil {
		return nil, err
	}
	return s.toResponse(enquiry), nil
}

func (s *contactService) AdminList(query *dto.ContactListQuery) ([]*dto.ContactEnquiryResponse, int64, error) {
	pageSize := query.GetPerPage(dto.DefaultEnquiryPageSize)
	offset := query.GetOffset(dto.DefaultEnquiryPageSize)
	enquiries, total, err := s.repo.List(query.Status, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]*dto.ContactEnquiryResponse, len(enquiries))
	for i, e := range enquiries {
		responses[i] = s.toResponse(e)
	}
	return responses, total, nil
}

func (s *contactService) AdminGet(id int64) (*dto.ContactEnquiryResponse, error) {
	enquiry, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(enquiry), nil
}

func (s *contactService) UpdateStatus(id int64, req *dto.UpdateEnquiryStatusRequest) (*dto.ContactEnquiryResponse, error) {
	if !model.IsValidEnquiryStatus(req.Status) {
		return nil, pkgErrors.NewValidation("Validation failed", map[string]string{
			"status": "The selected status is invalid.",
		})
	}
	enquiry, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	enquiry.Status = req.Status
	if err := s.repo.Update(enquiry); err != nil {
		return nil, err
	}
	return s.toResponse(enquiry), nil
}

func (s *contactService) UpdateNotes(id int64, req *dto.UpdateEnquiryNotesRequest) (*dto.ContactEnquiryResponse, error) {
	enquiry, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	enquiry.AdminNotes = req.AdminNotes
	if err := s.repo.Update(enquiry); err != nil {
		return nil, err
	}
	return s.toResponse(enquiry), nil
}

func (s *contactService) Delete(id int64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *contactService) toResponse(e *model.ContactEnquiry) *dto.ContactEnquiryResponse {
	return &dto.ContactEnquiryResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Subject:    e.Subject,
		Message:    e.Message,
		Status:     e.Status,
		AdminNotes: e.AdminNotes,
		CreatedAt:  formatTime(e.CreatedAt),
		UpdatedAt:  formatTime(e.UpdatedAt),
	}
}

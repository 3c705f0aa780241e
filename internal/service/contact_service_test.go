package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	"studio-cms/internal/repository"
	pkgErrors "studio-cms/pkg/errors"
)

type stubContactRepo struct {
	repository.ContactRepository
	created    *model.ContactEnquiry
	enquiry    *model.ContactEnquiry
	updated    *model.ContactEnquiry
	listStatus string
	listOffset int
	listLimit  int
}

func (s *stubContactRepo) Create(enquiry *model.ContactEnquiry) error {
	enquiry.ID = 1
	s.created = enquiry
	return nil
}

func (s *stubContactRepo) FindByID(id int64) (*model.ContactEnquiry, error) {
	if s.enquiry == nil || s.enquiry.ID != id {
		return nil, pkgErrors.ErrEnquiryNotFound
	}
	return s.enquiry, nil
}

func (s *stubContactRepo) Update(enquiry *model.ContactEnquiry) error {
	s.updated = enquiry
	return nil
}

func (s *stubContactRepo) List(status string, offset, limit int) ([]*model.ContactEnquiry, int64, error) {
	s.listStatus = status
	s.listOffset = offset
	s.listLimit = limit
	return nil, 0, nil
}

func TestContactServiceCreate(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo)

	resp, err := svc.Create(&dto.CreateContactRequest{
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
		Message: "Looking to renovate a loft.",
	})
	require.NoError(t, err)

	// 公开提交的询盘状态固定为new
	assert.Equal(t, model.EnquiryStatusNew, resp.Status)
	assert.Equal(t, model.EnquiryStatusNew, repo.created.Status)
	assert.EqualValues(t, 1, resp.ID)
	assert.Equal(t, "jordan@example.com", resp.Email)
}

func TestContactServiceAdminListPaging(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo)

	query := &dto.ContactListQuery{Status: "new"}
	query.Page = 3

	_, _, err := svc.AdminList(query)
	require.NoError(t, err)

	assert.Equal(t, "new", repo.listStatus)
	assert.Equal(t, dto.DefaultEnquiryPageSize, repo.listLimit)
	assert.Equal(t, 2*dto.DefaultEnquiryPageSize, repo.listOffset)
}

func TestContactServiceUpdateStatus(t *testing.T) {
	repo := &stubContactRepo{
		enquiry: &model.ContactEnquiry{BaseModel: model.BaseModel{ID: 5}, Status: model.EnquiryStatusNew},
	}
	svc := NewContactService(repo)

	resp, err := svc.UpdateStatus(5, &dto.UpdateEnquiryStatusRequest{Status: model.EnquiryStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, model.EnquiryStatusCompleted, resp.Status)
	assert.Equal(t, model.EnquiryStatusCompleted, repo.updated.Status)
}

func TestContactServiceUpdateStatusInvalid(t *testing.T) {
	repo := &stubContactRepo{
		enquiry: &model.ContactEnquiry{BaseModel: model.BaseModel{ID: 5}, Status: model.EnquiryStatusNew},
	}
	svc := NewContactService(repo)

	// 状态枚举之外的值被拒绝，且不触碰存储
	_, err := svc.UpdateStatus(5, &dto.UpdateEnquiryStatusRequest{Status: "archived"})
	require.Error(t, err)

	appErr, ok := err.(*pkgErrors.AppError)
	require.True(t, ok)
	assert.Equal(t, pkgErrors.CodeValidationError, appErr.Code)
	assert.Equal(t, "The selected status is invalid.", appErr.Fields["status"])
	assert.Nil(t, repo.updated)
}

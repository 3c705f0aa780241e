package service

import (
	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	"studio-cms/internal/repository"
	"studio-cms/pkg/utils"
)

type TestimonialService interface {
	List() ([]*dto.TestimonialResponse, error)
	ListFeatured() ([]*dto.TestimonialResponse, error)

	AdminList(page, pageSize int) ([]*dto.TestimonialResponse, int64, error)
	AdminGet(id int64) (*dto.TestimonialResponse, error)
	Create(req *dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error)
	Update(id int64, req *dto.UpdateTestimonialRequest) (*dto.TestimonialResponse, error)
	Delete(id int64) error
}

type testimonialService struct {
	repo      repository.TestimonialRepository
	baseURL   string
	mediaRoot string
}

func NewTestimonialService(repo repository.TestimonialRepository, baseURL, mediaRoot string) TestimonialService {
	return &testimonialService{
		repo:      repo,
		baseURL:   baseURL,
		mediaRoot: mediaRoot,
	}
}

func (s *testimonialService) List() ([]*dto.TestimonialResponse, error) {
	testimonials, err := s.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return s.toResponses(testimonials), nil
}

func (s *testimonialService) ListFeatured() ([]*dto.TestimonialResponse, error) {
	testimonials, err := s.repo.ListFeatured()
	if err != nil {
		return nil, err
	}
	return s.toResponses(testimonials), nil
}

func (s *testimonialService) AdminList(page, pageSize int) ([]*dto.TestimonialResponse, int64, error) {
	testimonials, total, err := s.repo.AdminList(page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return s.toResponses(testimonials), total, nil
}

func (s *testimonialService) AdminGet(id int64) (*dto.TestimonialResponse, error) {
	testimonial, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(testimonial), nil
}

func (s *testimonialService) Create(req *dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error) {
	testimonial := &model.Testimonial{
		ClientName:  req.ClientName,
		ClientTitle: req.ClientTitle,
		Company:     req.Company,
		Quote:       req.Quote,
		Photo:       req.Photo,
		Rating:      req.Rating,
		ProjectName: req.ProjectName,
		Featured:    req.Featured,
	}
	testimonial.IsActive = req.IsActive
	testimonial.SortOrder = req.SortOrder
	if testimonial.Rating == 0 {
		testimonial.Rating = 5
	}

	if err := s.repo.Create(testimonial); err != nil {
		return nil, err
	}
	return s.toResponse(testimonial), nil
}

func (s *testimonialService) Update(id int64, req *dto.UpdateTestimonialRequest) (*dto.TestimonialResponse, error) {
	testimonial, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		testimonial.ClientName = *req.ClientName
	}
	if req.ClientTitle != nil {
		testimonial.ClientTitle = *req.ClientTitle
	}
	if req.Company != nil {
		testimonial.Company = *req.Company
	}
	if req.Quote != nil {
		testimonial.Quote = *req.Quote
	}
	if req.Photo != nil {
		testimonial.Photo = *req.Photo
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.ProjectName != nil {
		testimonial.ProjectName = *req.ProjectName
	}
	if req.Featured != nil {
		testimonial.Featured = *req.Featured
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		testimonial.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(testimonial); err != nil {
		return nil, err
	}
	return s.toResponse(testimonial), nil
}

func (s *testimonialService) Delete(id int64) error {
	testimonial, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	removeMediaFiles(s.mediaRoot, []string{testimonial.Photo})
	return s.repo.Delete(testimonial.ID)
}

func (s *testimonialService) toResponse(t *model.Testimonial) *dto.TestimonialResponse {
	return &dto.TestimonialResponse{
		ID:          t.ID,
		ClientName:  t.ClientName,
		ClientTitle: t.ClientTitle,
		Company:     t.Company,
		Quote:       t.Quote,
		Photo:       utils.AssetURL(s.baseURL, t.Photo),
		Rating:      t.Rating,
		ProjectName: t.ProjectName,
		Featured:    t.Featured,
		IsActive:    t.IsActive,
		SortOrder:   t.SortOrder,
		CreatedAt:   formatTime(t.CreatedAt),
	}
}

func (s *testimonialService) toResponses(testimonials []*model.Testimonial) []*dto.TestimonialResponse {
	responses := make([]*dto.TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		responses[i] = s.toResponse(t)
	}
	return responses
}

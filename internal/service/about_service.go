package service

import (
	"studio-cms/internal/dto"
	"studio-cms/internal/model"
	"studio-cms/internal/repository"
	"studio-cms/pkg/utils"
)

// AboutService 关于页内容（区块、团队、历程、使命）
type AboutService interface {
	ListSections() ([]*dto.AboutSectionResponse, error)
	ListTeamMembers() ([]*dto.TeamMemberResponse, error)
	ListTimelineItems() ([]*dto.TimelineItemResponse, error)
	ListMissions() ([]*dto.MissionResponse, error)

	AdminListSections() ([]*dto.AboutSectionResponse, error)
	AdminGetSection(id int64) (*dto.AboutSectionResponse, error)
	CreateSection(req *dto.CreateAboutSectionRequest) (*dto.AboutSectionResponse, error)
	UpdateSection(id int64, req *dto.UpdateAboutSectionRequest) (*dto.AboutSectionResponse, error)
	DeleteSection(id int64) error

	AdminListTeamMembers() ([]*dto.TeamMemberResponse, error)
	AdminGetTeamMember(id int64) (*dto.TeamMemberResponse, error)
	CreateTeamMember(req *dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	UpdateTeamMember(id int64, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	DeleteTeamMember(id int64) error

	AdminListTimelineItems() ([]*dto.TimelineItemResponse, error)
	AdminGetTimelineItem(id int64) (*dto.TimelineItemResponse, error)
	CreateTimelineItem(req *dto.CreateTimelineItemRequest) (*dto.TimelineItemResponse, error)
	UpdateTimelineItem(id int64, req *dto.UpdateTimelineItemRequest) (*dto.TimelineItemResponse, error)
	DeleteTimelineItem(id int64) error

	AdminListMissions() ([]*dto.MissionResponse, error)
	AdminGetMission(id int64) (*dto.MissionResponse, error)
	CreateMission(req *dto.CreateMissionRequest) (*dto.MissionResponse, error)
	UpdateMission(id int64, req *dto.UpdateMissionRequest) (*dto.MissionResponse, error)
	DeleteMission(id int64) error
}

type aboutService struct {
	repo      repository.AboutRepository
	baseURL   string
	mediaRoot string
}

func NewAboutService(repo repository.AboutRepository, baseURL, mediaRoot string) AboutService {
	return &aboutService{
		repo:      repo,
		baseURL:   baseURL,
		mediaRoot: mediaRoot,
	}
}

func (s *aboutService) ListSections() ([]*dto.AboutSectionResponse, error) {
	sections, err := s.repo.ListActiveSections()
	if err != nil {
		return nil, err
	}
	return s.toSectionResponses(sections), nil
}

func (s *aboutService) ListTeamMembers() ([]*dto.TeamMemberResponse, error) {
	members, err := s.repo.ListActiveTeamMembers()
	if err != nil {
		return nil, err
	}
	return s.toTeamMemberResponses(members), nil
}

func (s *aboutService) ListTimelineItems() ([]*dto.TimelineItemResponse, error) {
	items, err := s.repo.ListActiveTimelineItems()
	if err != nil {
		return nil, err
	}
	return s.toTimelineItemResponses(items), nil
}

func (s *aboutService) ListMissions() ([]*dto.MissionResponse, error) {
	missions, err := s.repo.ListActiveMissions()
	if err != nil {
		return nil, err
	}
	return s.toMissionResponses(missions), nil
}

func (s *aboutService) AdminListSections() ([]*dto.AboutSectionResponse, error) {
	sections, err := s.repo.ListAllSections()
	if err != nil {
		return nil, err
	}
	return s.toSectionResponses(sections), nil
}

func (s *aboutService) AdminGetSection(id int64) (*dto.AboutSectionResponse, error) {
	section, err := s.repo.FindSectionByID(id)
	if err != nil {
		return nil, err
	}
	return s.toSectionResponse(section), nil
}

func (s *aboutService) CreateSection(req *dto.CreateAboutSectionRequest) (*dto.AboutSectionResponse, error) {
	section := &model.AboutSection{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Content:  req.Content,
		Image:    req.Image,
	}
	section.IsActive = req.IsActive
	section.SortOrder = req.SortOrder

	if err := s.repo.CreateSection(section); err != nil {
		return nil, err
	}
	return s.toSectionResponse(section), nil
}

func (s *aboutService) UpdateSection(id int64, req *dto.UpdateAboutSectionRequest) (*dto.AboutSectionResponse, error) {
	section, err := s.repo.FindSectionByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Subtitle != nil {
		section.Subtitle = *req.Subtitle
	}
	if req.Content != nil {
		section.Content = *req.Content
	}
	if req.Image != nil {
		section.Image = *req.Image
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		section.SortOrder = *req.SortOrder
	}

	if err := s.repo.UpdateSection(section); err != nil {
		return nil, err
	}
	return s.toSectionResponse(section), nil
}

func (s *aboutService) DeleteSection(id int64) error {
	section, err := s.repo.FindSectionByID(id)
	if err != nil {
		return err
	}
	removeMediaFiles(s.mediaRoot, []string{section.Image})
	return s.repo.DeleteSection(section.ID)
}

func (s *aboutService) AdminListTeamMembers() ([]*dto.TeamMemberResponse, error) {
	members, err := s.repo.ListAllTeamMembers()
	if err != nil {
		return nil, err
	}
	return s.toTeamMemberResponses(members), nil
}

func (s *aboutService) AdminGetTeamMember(id int64) (*dto.TeamMemberResponse, error) {
	member, err := s.repo.FindTeamMemberByID(id)
	if err != nil {
		return nil, err
	}
	return s.toTeamMemberResponse(member), nil
}

func (s *aboutService) CreateTeamMember(req *dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member := &model.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Bio:         req.Bio,
		Photo:       req.Photo,
		Email:       req.Email,
		LinkedinURL: req.LinkedinURL,
	}
	member.IsActive = req.IsActive
	member.SortOrder = req.SortOrder

	if err := s.repo.CreateTeamMember(member); err != nil {
		return nil, err
	}
	return s.toTeamMemberResponse(member), nil
}

func (s *aboutService) UpdateTeamMember(id int64, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member, err := s.repo.FindTeamMemberByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.Photo != nil {
		member.Photo = *req.Photo
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.LinkedinURL != nil {
		member.LinkedinURL = *req.LinkedinURL
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		member.SortOrder = *req.SortOrder
	}

	if err := s.repo.UpdateTeamMember(member); err != nil {
		return nil, err
	}
	return s.toTeamMemberResponse(member), nil
}

func (s *aboutService) DeleteTeamMember(id int64) error {
	member, err := s.repo.FindTeamMemberByID(id)
	if err != nil {
		return err
	}
	removeMediaFiles(s.mediaRoot, []string{member.Photo})
	return s.repo.DeleteTeamMember(member.ID)
}

func (s *aboutService) AdminListTimelineItems() ([]*dto.TimelineItemResponse, error) {
	items, err := s.repo.ListAllTimelineItems()
	if err != nil {
		return nil, err
	}
	return s.toTimelineItemResponses(items), nil
}

func (s *aboutService) AdminGetTimelineItem(id int64) (*dto.TimelineItemResponse, error) {
	item, err := s.repo.FindTimelineItemByID(id)
	if err != nil {
		return nil, err
	}
	return s.toTimelineItemResponse(item), nil
}

func (s *aboutService) CreateTimelineItem(req *dto.CreateTimelineItemRequest) (*dto.TimelineItemResponse, error) {
	item := &model.TimelineItem{
		Year:        req.Year,
		Title:       req.Title,
		Description: req.Description,
	}
	item.IsActive = req.IsActive
	item.SortOrder = req.SortOrder

	if err := s.repo.CreateTimelineItem(item); err != nil {
		return nil, err
	}
	return s.toTimelineItemResponse(item), nil
}

func (s *aboutService) UpdateTimelineItem(id int64, req *dto.UpdateTimelineItemRequest) (*dto.TimelineItemResponse, error) {
	item, err := s.repo.FindTimelineItemByID(id)
	if err != nil {
		return nil, err
	}

	if req.Year != nil {
		item.Year = *req.Year
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}

	if err := s.repo.UpdateTimelineItem(item); err != nil {
		return nil, err
	}
	return s.toTimelineItemResponse(item), nil
}

func (s *aboutService) DeleteTimelineItem(id int64) error {
	if _, err := s.repo.FindTimelineItemByID(id); err != nil {
		return err
	}
	return s.repo.DeleteTimelineItem(id)
}

func (s *aboutService) AdminListMissions() ([]*dto.MissionResponse, error) {
	missions, err := s.repo.ListAllMissions()
	if err != nil {
		return nil, err
	}
	return s.toMissionResponses(missions), nil
}

func (s *aboutService) AdminGetMission(id int64) (*dto.MissionResponse, error) {
	mission, err := s.repo.FindMissionByID(id)
	if err != nil {
		return nil, err
	}
	return s.toMissionResponse(mission), nil
}

func (s *aboutService) CreateMission(req *dto.CreateMissionRequest) (*dto.MissionResponse, error) {
	mission := &model.Mission{
		Title:   req.Title,
		Content: req.Content,
		Icon:    req.Icon,
	}
	mission.IsActive = req.IsActive
	mission.SortOrder = req.SortOrder

	if err := s.repo.CreateMission(mission); err != nil {
		return nil, err
	}
	return s.toMissionResponse(mission), nil
}

func (s *aboutService) UpdateMission(id int64, req *dto.UpdateMissionRequest) (*dto.MissionResponse, error) {
	mission, err := s.repo.FindMissionByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		mission.Title = *req.Title
	}
	if req.Content != nil {
		mission.Content = *req.Content
	}
	if req.Icon != nil {
		mission.Icon = *req.Icon
	}
	if req.IsActive != nil {
		mission.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		mission.SortOrder = *req.SortOrder
	}

	if err := s.repo.UpdateMission(mission); err != nil {
		return nil, err
	}
	return s.toMissionResponse(mission), nil
}

func (s *aboutService) DeleteMission(id int64) error {
	if _, err := s.repo.FindMissionByID(id); err != nil {
		return err
	}
	return s.repo.DeleteMission(id)
}

func (s *aboutService) toSectionResponse(sec *model.AboutSection) *dto.AboutSectionResponse {
	return &dto.AboutSectionResponse{
		ID:        sec.ID,
		Title:     sec.Title,
		Subtitle:  sec.Subtitle,
		Content:   sec.Content,
		Image:     utils.AssetURL(s.baseURL, sec.Image),
		IsActive:  sec.IsActive,
		SortOrder: sec.SortOrder,
	}
}

func (s *aboutService) toSectionResponses(sections []*model.AboutSection) []*dto.AboutSectionResponse {
	responses := make([]*dto.AboutSectionResponse, len(sections))
	for i, sec := range sections {
		responses[i] = s.toSectionResponse(sec)
	}
	return responses
}

func (s *aboutService) toTeamMemberResponse(m *model.TeamMember) *dto.TeamMemberResponse {
	return &dto.TeamMemberResponse{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Bio:         m.Bio,
		Photo:       utils.AssetURL(s.baseURL, m.Photo),
		Email:       m.Email,
		LinkedinURL: m.LinkedinURL,
		IsActive:    m.IsActive,
		SortOrder:   m.SortOrder,
	}
}

func (s *aboutService) toTeamMemberResponses(members []*model.TeamMember) []*dto.TeamMemberResponse {
	responses := make([]*dto.TeamMemberResponse, len(members))
	for i, m := range members {
		responses[i] = s.toTeamMemberResponse(m)
	}
	return responses
}

func (s *aboutService) toTimelineItemResponse(item *model.TimelineItem) *dto.TimelineItemResponse {
	return &dto.TimelineItemResponse{
		ID:          item.ID,
		Year:        item.Year,
		Title:       item.Title,
		Description: item.Description,
		IsActive:    item.IsActive,
		SortOrder:   item.SortOrder,
	}
}

func (s *aboutService) toTimelineItemResponses(items []*model.TimelineItem) []*dto.TimelineItemResponse {
	responses := make([]*dto.TimelineItemResponse, len(items))
	for i, item := range items {
		responses[i] = s.toTimelineItemResponse(item)
	}
	return responses
}

func (s *aboutService) toMissionResponse(m *model.Mission) *dto.MissionResponse {
	return &dto.MissionResponse{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Icon:      m.Icon,
		IsActive:  m.IsActive,
		SortOrder: m.SortOrder,
	}
}

func (s *aboutService) toMissionResponses(missions []*model.Mission) []*dto.MissionResponse {
	responses := make([]*dto.MissionResponse, len(missions))
	for i, m := range missions {
		responses[i] = s.toMissionResponse(m)
	}
	return responses
}

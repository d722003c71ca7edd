package boats

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	boatRepo "github.com/m04kA/BCM-BookingService/internal/infra/storage/boat"
	"github.com/m04kA/BCM-BookingService/internal/service/boats/models"
)

// Service сервис каталога лодок
type Service struct {
	boatRepo BoatRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(boatRepo BoatRepository, logger Logger) *Service {
	return &Service{
		boatRepo: boatRepo,
		logger:   logger,
	}
}

// Create создает карточку лодки
// Незаполненные поля правила доступности получают значения по умолчанию
func (s *Service) Create(ctx context.Context, req *models.CreateBoatRequest) (*models.BoatResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid boat payload: %v", err)
		return nil, err
	}

	boat := &domain.Boat{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Location:    req.Location,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Description: req.Description,
		Amenities:   req.Amenities,
		ImageURL:    req.ImageURL,
		OwnerID:     req.OwnerID,
		OwnerName:   req.OwnerName,
		OwnerEmail:  req.OwnerEmail,
		Rule:        ruleFromRequest(req),
	}

	created, err := s.boatRepo.Create(ctx, boat)
	if err != nil {
		s.logger.Error("Create: repository error for boat %s: %v", boat.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: boat id=%s created by owner=%s", created.ID, created.OwnerID)
	return models.FromDomainBoat(created), nil
}

// GetByID получает лодку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BoatResponse, error) {
	boat, err := s.boatRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, boatRepo.ErrBoatNotFound) {
			s.logger.Warn("GetByID: boat id=%s not found", id)
			return nil, ErrBoatNotFound
		}
		s.logger.Error("GetByID: repository error for boat id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBoat(boat), nil
}

// List получает каталог лодок
func (s *Service) List(ctx context.Context) (*models.BoatListResponse, error) {
	boats, err := s.boatRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBoatList(boats), nil
}

func validateCreateRequest(req *models.CreateBoatRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.OwnerID == "" {
		return fmt.Errorf("%w: ownerId is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	rule := ruleFromRequest(req)
	if !rule.IsBookable() {
		return fmt.Errorf("%w: availability rule produces no bookable slots", ErrInvalidInput)
	}

	return nil
}

func ruleFromRequest(req *models.CreateBoatRequest) domain.AvailabilityRule {
	rule := domain.AvailabilityRule{
		StartHour:       domain.DefaultStartHour,
		EndHour:         domain.DefaultEndHour,
		SlotLengthHours: domain.DefaultSlotLengthHours,
		MinHours:        domain.DefaultMinHours,
	}

	if req.StartHour != nil {
		rule.StartHour = *req.StartHour
	}
	if req.EndHour != nil {
		rule.EndHour = *req.EndHour
	}
	if req.SlotLengthHours != nil {
		rule.SlotLengthHours = *req.SlotLengthHours
	}
	if req.MinHours != nil {
		rule.MinHours = *req.MinHours
	}

	return rule
}

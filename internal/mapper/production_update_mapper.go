package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"qa-review-be/internal/entity"
	"qa-review-be/internal/model"
)

type ProductionUpdateMapper struct{}

func NewProductionUpdateMapper() *ProductionUpdateMapper {
	return &ProductionUpdateMapper{}
}

func (m *ProductionUpdateMapper) ToEntity(p *model.ProductionUpdate) *entity.ProductionUpdate {
	if p == nil {
		return nil
	}

	original := make(map[string]interface{})
	_ = json.Unmarshal(p.OriginalData, &original)

	updated := make(map[string]interface{})
	_ = json.Unmarshal(p.UpdatedData, &updated)

	return &entity.ProductionUpdate{
		Id:             p.Id,
		ReviewId:       p.ReviewId,
		Intent:         p.Intent,
		TargetTable:    p.TargetTable,
		OriginalData:   original,
		UpdatedData:    updated,
		UpdatedBy:      p.UpdatedBy,
		UpdatedAt:      p.UpdatedAt,
		RolledBack:     p.RolledBack,
		RollbackReason: p.RollbackReason,
	}
}

func (m *ProductionUpdateMapper) ToModel(p *entity.ProductionUpdate) *model.ProductionUpdate {
	if p == nil {
		return nil
	}

	original, _ := json.Marshal(p.OriginalData)
	updated, _ := json.Marshal(p.UpdatedData)

	return &model.ProductionUpdate{
		Id:             p.Id,
		ReviewId:       p.ReviewId,
		Intent:         p.Intent,
		TargetTable:    p.TargetTable,
		OriginalData:   datatypes.JSON(original),
		UpdatedData:    datatypes.JSON(updated),
		UpdatedBy:      p.UpdatedBy,
		UpdatedAt:      p.UpdatedAt,
		RolledBack:     p.RolledBack,
		RollbackReason: p.RollbackReason,
	}
}

func (m *ProductionUpdateMapper) ToEntities(models []*model.ProductionUpdate) []*entity.ProductionUpdate {
	entities := make([]*entity.ProductionUpdate, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}

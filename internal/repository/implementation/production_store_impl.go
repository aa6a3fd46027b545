package implementation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"qa-review-be/internal/repository/contract"
)

// ProductionStoreImpl reaches into the production content tables with raw
// SQL. Table and column names come from the closed intent registry, never
// from request input; only values are parameterized.
type ProductionStoreImpl struct {
	db *gorm.DB
}

func NewProductionStore(db *gorm.DB) contract.ProductionStore {
	return &ProductionStoreImpl{db: db}
}

func (s *ProductionStoreImpl) FetchRecord(ctx context.Context, table string, lookup map[string]string, lockRow bool) (map[string]interface{}, error) {
	where, args := buildWhere(lookup)

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s LIMIT 1", table, where)
	if lockRow {
		query += " FOR UPDATE"
	}

	var record map[string]interface{}
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&record).Error; err != nil {
		return nil, err
	}
	if len(record) == 0 {
		return nil, nil
	}
	return record, nil
}

func (s *ProductionStoreImpl) UpdateRecord(ctx context.Context, table string, lookup map[string]string, updates map[string]interface{}) (int64, error) {
	setCols := make([]string, 0, len(updates))
	for col := range updates {
		setCols = append(setCols, col)
	}
	sort.Strings(setCols)

	setClauses := make([]string, 0, len(setCols))
	args := make([]interface{}, 0, len(setCols)+len(lookup))
	for _, col := range setCols {
		setClauses = append(setClauses, col+" = ?")
		args = append(args, updates[col])
	}

	where, whereArgs := buildWhere(lookup)
	args = append(args, whereArgs...)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(setClauses, ", "), where)

	result := s.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func buildWhere(lookup map[string]string) (string, []interface{}) {
	cols := make([]string, 0, len(lookup))
	for col := range lookup {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	conditions := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols))
	for _, col := range cols {
		conditions = append(conditions, col+" = ?")
		args = append(args, lookup[col])
	}
	return strings.Join(conditions, " AND "), args
}

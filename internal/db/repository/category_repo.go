package repository

import (
	"context"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

const listCategoriesSQL = `SELECT id, type FROM categories ORDER BY id`

// CategoryRepository reads the category table.
type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.db.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []trivia.Category{}
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

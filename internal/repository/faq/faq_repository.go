// File: internal/repository/faq/faq_repository.go
package faq

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/medibot-health/go-medibot/internal/domain"
	"gorm.io/gorm"
)

type gormFAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &gormFAQRepository{db: db}
}

func (r *gormFAQRepository) Create(ctx context.Context, f *domain.FAQ) (*domain.FAQ, error) {
	if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
		return nil, errors.New("faq requires a question and an answer")
	}

	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		log.Printf("[FAQRepository] Database error creating FAQ: %v", err)
		return nil, errors.New("database error creating FAQ")
	}
	return f, nil
}

// Search ranks FAQs by how many query terms match the question text. SQLite
// has no weighted text index here, so ranking counts per-term LIKE hits.
func (r *gormFAQRepository) Search(ctx context.Context, query string, limit int) ([]domain.FAQ, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil, errors.New("empty search query")
	}
	if limit <= 0 || limit > 20 {
		limit = 5
	}

	db := r.db.WithContext(ctx).Model(&domain.FAQ{})
	cond := r.db.Session(&gorm.Session{NewDB: true}).
		Where("lower(question) LIKE ?", "%"+terms[0]+"%")
	for _, term := range terms[1:] {
		cond = cond.Or("lower(question) LIKE ?", "%"+term+"%")
	}
	var faqs []domain.FAQ
	err := db.Where(cond).Limit(limit * 4).Find(&faqs).Error
	if err != nil {
		log.Printf("[FAQRepository] Database error searching FAQs: %v", err)
		return nil, errors.New("database error searching FAQs")
	}

	rankFAQs(faqs, terms)
	if len(faqs) > limit {
		faqs = faqs[:limit]
	}
	return faqs, nil
}

// SearchLike is the degraded substring path used when Search fails.
func (r *gormFAQRepository) SearchLike(ctx context.Context, query string, limit int) ([]domain.FAQ, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("empty search query")
	}
	if limit <= 0 || limit > 20 {
		limit = 5
	}

	var faqs []domain.FAQ
	err := r.db.WithContext(ctx).
		Where("lower(question) LIKE ?", "%"+strings.ToLower(query)+"%").
		Limit(limit).
		Find(&faqs).Error
	if err != nil {
		log.Printf("[FAQRepository] Database error in LIKE search: %v", err)
		return nil, errors.New("database error searching FAQs")
	}
	return faqs, nil
}

// rankFAQs sorts in place by descending count of matched terms, stable on ID.
func rankFAQs(faqs []domain.FAQ, terms []string) {
	score := func(f *domain.FAQ) int {
		q := strings.ToLower(f.Question)
		n := 0
		for _, t := range terms {
			if strings.Contains(q, t) {
				n++
			}
		}
		return n
	}
	for i := 1; i < len(faqs); i++ {
		for j := i; j > 0 && score(&faqs[j]) > score(&faqs[j-1]); j-- {
			faqs[j], faqs[j-1] = faqs[j-1], faqs[j]
		}
	}
}

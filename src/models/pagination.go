package models

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PaginationParams พารามิเตอร์แบ่งหน้า ค้นหา และเรียงลำดับของ list endpoint
type PaginationParams struct {
	Page   int    `json:"page" query:"page"  example:"1"`      // หมายเลขหน้าที่ต้องการ
	Limit  int    `json:"limit" query:"limit" example:"10"`    // จำนวนรายการต่อหน้า
	Search string `json:"search" query:"search" example:""`    // คำค้นหา (Optional)
	SortBy string `json:"sortBy" query:"sortBy" example:"_id"` // ฟิลด์ที่ใช้เรียงลำดับ
	Order  string `json:"order" query:"order" example:"desc"`  // ทิศทางการเรียง (asc/desc)
}

// PaginatedResponse โครงสร้างการตอบกลับแบบแบ่งหน้า
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination ค่าตั้งต้นสำหรับ Pagination
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:   1,
		Limit:  defaultPageSize,
		Search: "",
		SortBy: "_id",
		Order:  "asc",
	}
}

// normalized clamps page and limit so query input cannot produce a negative
// skip or an unbounded page size.
func (p PaginationParams) normalized() PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	if p.SortBy == "" {
		p.SortBy = "_id"
	}
	return p
}

// NewPaginatedResponse สร้าง PaginatedResponse จากผลลัพธ์หนึ่งหน้า
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	params = params.normalized()
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip คำนวณจำนวนรายการที่ต้องข้าม
func (p *PaginationParams) GetSkip() int64 {
	n := p.normalized()
	return int64((n.Page - 1) * n.Limit)
}

// GetLimit ขนาดหน้าหลัง clamp แล้ว ใช้กับ Find().SetLimit
func (p *PaginationParams) GetLimit() int64 {
	return int64(p.normalized().Limit)
}

// GetSortOrder builds the Mongo sort document. bson.D keeps the sort key
// deterministic.
func (p *PaginationParams) GetSortOrder() bson.D {
	n := p.normalized()
	order := 1 // 1 = asc, -1 = desc
	if n.Order == "desc" {
		order = -1
	}
	return bson.D{{Key: n.SortBy, Value: order}}
}

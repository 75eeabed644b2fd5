package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type condition struct {
	query string
	args  []interface{}
}

// Pipeline 描述一次 match / lookup / project / sort 查询，执行交给 Paginate 或 One
type Pipeline struct {
	table     string
	matches   []condition
	joins     []string
	fields    []string
	fieldArgs []interface{}
	sortable  map[string]string
	sortCol   string
	desc      bool
	err       error
}

func From(table string) *Pipeline {
	return &Pipeline{
		table:   table,
		sortCol: table + ".created_at",
		desc:    true,
	}
}

// Match 追加一个 WHERE 条件，多次调用之间为 AND
func (p *Pipeline) Match(query string, args ...interface{}) *Pipeline {
	p.matches = append(p.matches, condition{query: query, args: args})
	return p
}

// Lookup 按主键左连接 from 表，连接结果最多一行，不会放大行数
func (p *Pipeline) Lookup(from, as, localField string) *Pipeline {
	p.joins = append(p.joins, fmt.Sprintf("LEFT JOIN %s AS %s ON %s.id = %s", from, as, as, localField))
	return p
}

func (p *Pipeline) Project(fields ...string) *Pipeline {
	p.fields = append(p.fields, fields...)
	return p
}

// AddField 追加一个计算字段，expr 需自带 AS 别名
func (p *Pipeline) AddField(expr string, args ...interface{}) *Pipeline {
	p.fields = append(p.fields, expr)
	p.fieldArgs = append(p.fieldArgs, args...)
	return p
}

// Sortable 设置允许排序的公开字段名到列的映射
func (p *Pipeline) Sortable(columns map[string]string) *Pipeline {
	p.sortable = columns
	return p
}

// Sort 空字段名保持默认的 created_at 排序
func (p *Pipeline) Sort(field string, desc bool) *Pipeline {
	p.desc = desc
	if field == "" {
		return p
	}
	col, ok := p.sortable[field]
	if !ok {
		p.err = errno.ParamErr.WithMessage("invalid sort field: " + field)
		return p
	}
	p.sortCol = col
	return p
}

func (p *Pipeline) base(ctx context.Context, db *gorm.DB) *gorm.DB {
	q := db.WithContext(ctx).Table(p.table)
	for _, j := range p.joins {
		q = q.Joins(j)
	}
	for _, m := range p.matches {
		q = q.Where(m.query, m.args...)
	}
	return q
}

func (p *Pipeline) selected(ctx context.Context, db *gorm.DB) *gorm.DB {
	q := p.base(ctx, db)
	if len(p.fields) > 0 {
		q = q.Select(strings.Join(p.fields, ", "), p.fieldArgs...)
	}
	dir := "ASC"
	if p.desc {
		dir = "DESC"
	}
	return q.Order(fmt.Sprintf("%s %s", p.sortCol, dir)).Order(p.table + ".id " + dir)
}

// Labels 决定分页结果中列表与总数的键名
type Labels struct {
	Docs      string
	TotalDocs string
}

var DefaultLabels = Labels{Docs: "docs", TotalDocs: "totalDocs"}

type PageOptions struct {
	Page   int
	Limit  int
	Labels Labels
}

func (o PageOptions) normalize() PageOptions {
	if o.Page < 1 {
		o.Page = constants.DefaultPage
	}
	if o.Page > constants.MaxPage {
		o.Page = constants.MaxPage
	}
	if o.Limit < 1 {
		o.Limit = constants.DefaultPageSize
	}
	if o.Limit > constants.MaxPageSize {
		o.Limit = constants.MaxPageSize
	}
	if o.Labels.Docs == "" {
		o.Labels.Docs = DefaultLabels.Docs
	}
	if o.Labels.TotalDocs == "" {
		o.Labels.TotalDocs = DefaultLabels.TotalDocs
	}
	return o
}

type Page[T any] struct {
	Items         []T
	TotalItems    int64
	Page          int
	Limit         int
	TotalPages    int
	PagingCounter int
	HasPrevPage   bool
	HasNextPage   bool
	PrevPage      *int
	NextPage      *int
	Labels        Labels
}

// MarshalJSON 按固定顺序输出字段，列表与总数使用 Labels 指定的键名
func (pg Page[T]) MarshalJSON() ([]byte, error) {
	items := pg.Items
	if items == nil {
		items = []T{}
	}
	labels := pg.Labels
	if labels.Docs == "" {
		labels = DefaultLabels
	}
	fields := []struct {
		key   string
		value interface{}
	}{
		{labels.Docs, items},
		{labels.TotalDocs, pg.TotalItems},
		{"page", pg.Page},
		{"limit", pg.Limit},
		{"totalPages", pg.TotalPages},
		{"pagingCounter", pg.PagingCounter},
		{"hasPrevPage", pg.HasPrevPage},
		{"hasNextPage", pg.HasNextPage},
		{"prevPage", pg.PrevPage},
		{"nextPage", pg.NextPage},
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.value)
		if err != nil {
			return nil, errors.Wrapf(err, "marshal %s", f.key)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Paginate 先计数再取当前页，页码越界时返回空列表和准确的总数
func Paginate[T any](ctx context.Context, db *gorm.DB, p *Pipeline, opts PageOptions) (*Page[T], error) {
	if p.err != nil {
		return nil, p.err
	}
	opts = opts.normalize()

	var total int64
	if err := p.base(ctx, db).Count(&total).Error; err != nil {
		return nil, errors.Wrapf(err, "count %s", p.table)
	}

	totalPages := int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	// Page 已被限制在 MaxPage 以内，偏移量不会溢出
	items := make([]T, 0)
	offset := (opts.Page - 1) * opts.Limit
	if opts.Page <= totalPages && int64(offset) < total {
		if err := p.selected(ctx, db).Offset(offset).Limit(opts.Limit).Scan(&items).Error; err != nil {
			return nil, errors.Wrapf(err, "query %s", p.table)
		}
	}
	pg := &Page[T]{
		Items:         items,
		TotalItems:    total,
		Page:          opts.Page,
		Limit:         opts.Limit,
		TotalPages:    totalPages,
		PagingCounter: offset + 1,
		HasPrevPage:   opts.Page > 1,
		HasNextPage:   opts.Page < totalPages,
		Labels:        opts.Labels,
	}
	if pg.HasPrevPage {
		prev := opts.Page - 1
		pg.PrevPage = &prev
	}
	if pg.HasNextPage {
		next := opts.Page + 1
		pg.NextPage = &next
	}
	return pg, nil
}

// One 执行同一管道并取第一行，无结果时返回 gorm.ErrRecordNotFound
func One[T any](ctx context.Context, db *gorm.DB, p *Pipeline) (*T, error) {
	if p.err != nil {
		return nil, p.err
	}
	items := make([]T, 0, 1)
	if err := p.selected(ctx, db).Limit(1).Scan(&items).Error; err != nil {
		return nil, errors.Wrapf(err, "query %s", p.table)
	}
	if len(items) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &items[0], nil
}

// All 不分页地返回全部结果，用于嵌套的小集合
func All[T any](ctx context.Context, db *gorm.DB, p *Pipeline) ([]T, error) {
	if p.err != nil {
		return nil, p.err
	}
	items := make([]T, 0)
	if err := p.selected(ctx, db).Scan(&items).Error; err != nil {
		return nil, errors.Wrapf(err, "query %s", p.table)
	}
	return items, nil
}

package service

import (
	"context"
	"strings"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/video/dal/db"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
)

type VideoListRequest struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserID   string `query:"userId"`
}

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

// VideoList 默认按创建时间倒序，sortType 只有 desc 表示倒序
func (s *VideoListService) VideoList(req *VideoListRequest) (*database.Page[model.VideoItem], error) {
	if req.UserID != "" && !database.ValidID(req.UserID) {
		return nil, errno.ParamErr.WithMessage("Invalid user id")
	}
	sortBy, sortType := req.SortBy, strings.ToLower(req.SortType)
	if sortBy == "" {
		sortBy = "createdAt"
	}
	if sortType == "" {
		sortType = "desc"
	}
	return db.ListVideos(s.ctx, db.ListQuery{
		Page:   req.Page,
		Limit:  req.Limit,
		Query:  req.Query,
		SortBy: sortBy,
		Desc:   sortType == "desc",
		UserID: req.UserID,
	})
}

package handlers

import (
	"context"
	"mime/multipart"

	"MyTube.com/cmd/api/infras"
	"MyTube.com/cmd/api/pack"
	videosvc "MyTube.com/cmd/video/service"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// formFile 表单中没有该文件时返回 nil
func formFile(c *app.RequestContext, name string) *multipart.FileHeader {
	f, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return f
}

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var req videosvc.VideoListRequest
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	page, err := videosvc.NewVideoListService(ctx).VideoList(&req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Videos fetched successfully"), page)
}

// PublishVideo 支持 multipart 上传 videoFile/thumbnail，也支持 JSON 提交已直传的媒体引用
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var req videosvc.PublishVideoRequest
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	req.VideoUpload = formFile(c, "videoFile")
	req.ThumbnailUpload = formFile(c, "thumbnail")
	video, err := videosvc.NewPublishVideoService(ctx, infras.Media).Publish(pack.UserID(c), &req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Created.WithMessage("Video published successfully"), video)
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	video, err := videosvc.NewVideoInfoService(ctx).VideoInfo(c.Param("videoId"), pack.UserID(c))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Video fetched successfully"), video)
}

func VideoStats(ctx context.Context, c *app.RequestContext) {
	stats, err := videosvc.NewVideoInfoService(ctx).VideoStats(c.Param("videoId"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Video stats fetched successfully"), stats)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var req videosvc.UpdateVideoRequest
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	req.ThumbnailUpload = formFile(c, "thumbnail")
	video, err := videosvc.NewUpdateVideoService(ctx, infras.Media).Update(c.Param("videoId"), pack.UserID(c), &req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Video updated successfully"), video)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	video, err := videosvc.NewDeleteVideoService(ctx, infras.Media).Delete(c.Param("videoId"), pack.UserID(c))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Video deleted successfully"), map[string]string{"_id": video.ID})
}

func TogglePublish(ctx context.Context, c *app.RequestContext) {
	video, err := videosvc.NewTogglePublishService(ctx).TogglePublish(c.Param("videoId"), pack.UserID(c))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Publish status toggled successfully"), video)
}

package service

import (
	"context"
	"mime/multipart"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

func invalidVideoID() error {
	return errno.ParamErr.WithMessage("Invalid video id")
}

func checkVideoID(id string) error {
	if !database.ValidID(id) {
		return invalidVideoID()
	}
	return nil
}

// upload 上传表单文件，file 为空时返回零值
func upload(ctx context.Context, media oss.MediaStore, kind string, file *multipart.FileHeader) (model.MediaRef, error) {
	if file == nil {
		return model.MediaRef{}, nil
	}
	f, err := file.Open()
	if err != nil {
		return model.MediaRef{}, errno.ParamErr.WithMessage("Uploaded file is unreadable")
	}
	defer f.Close()
	ref, err := media.Upload(ctx, kind, file.Filename, f, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return model.MediaRef{}, errors.WithMessagef(err, "upload %s failed", kind)
	}
	return ref, nil
}

// cleanup 删除媒体文件，失败只记录日志
func cleanup(ctx context.Context, media oss.MediaStore, refs ...model.MediaRef) {
	for _, ref := range refs {
		if ref.PublicID == "" {
			continue
		}
		if err := media.Delete(ctx, ref.PublicID); err != nil {
			hlog.CtxWarnf(ctx, "delete media %s failed: %v", ref.PublicID, err)
		}
	}
}

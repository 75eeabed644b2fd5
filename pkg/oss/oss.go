package oss

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/errno"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// 上传类型
const (
	KindVideo  = "video"
	KindImage  = "image"
	KindAvatar = "avatar"
)

const avatarFolder = "mytube/avatars"

// MediaStore 媒体存储，Delete 失败由调用方记录日志后忽略
type MediaStore interface {
	Upload(ctx context.Context, kind, filename string, r io.Reader, size int64, contentType string) (model.MediaRef, error)
	Delete(ctx context.Context, publicID string) error
	// PresignUpload 生成的 key 位于 ownerID 的目录下
	PresignUpload(ctx context.Context, kind, ownerID, filename string) (*UploadTicket, error)
	URL(publicID string) string
}

// UploadTicket 客户端直传所需的信息
type UploadTicket struct {
	UploadURL string    `json:"uploadUrl"`
	Method    string    `json:"method"`
	PublicID  string    `json:"publicId"`
	URL       string    `json:"url"`
	Folder    string    `json:"folder"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Store struct {
	client *minio.Client
	cfg    Config
}

func newStore(client *minio.Client, cfg Config) *Store {
	if cfg.PresignExpiry <= 0 {
		cfg.PresignExpiry = 15 * time.Minute
	}
	if cfg.PublicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		cfg.PublicURL = scheme + "://" + cfg.Endpoint
	}
	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")
	return &Store{client: client, cfg: cfg}
}

// Folder 返回上传类型对应的目录
func Folder(kind string) (string, error) {
	switch kind {
	case KindVideo:
		return constants.VideoFolder, nil
	case KindImage:
		return constants.ImageFolder, nil
	case KindAvatar:
		return avatarFolder, nil
	default:
		return "", errno.ParamErr.WithMessage("Invalid upload type. Must be 'video' or 'image'.")
	}
}

// ObjectKey 以随机名保存，保留原始扩展名
func ObjectKey(folder, filename string) string {
	return folder + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
}

// OwnerKey 直传文件放在上传者自己的目录下
func OwnerKey(folder, ownerID, filename string) string {
	return ObjectKey(folder+"/"+ownerID, filename)
}

// CheckRef 校验客户端直传后提交的引用：只接受该用户目录下的 key，且 URL 与存储地址一致
func CheckRef(store MediaStore, kind, ownerID string, ref model.MediaRef) error {
	invalid := errno.ParamErr.WithMessage("Invalid media reference")
	folder, err := Folder(kind)
	if err != nil {
		return err
	}
	key := ref.PublicID
	if ownerID == "" || key == "" || path.Clean(key) != key || strings.Contains(key, "..") {
		return invalid
	}
	if !strings.HasPrefix(key, folder+"/"+ownerID+"/") {
		return invalid
	}
	if ref.URL != store.URL(key) {
		return invalid
	}
	return nil
}

func (s *Store) URL(publicID string) string {
	return fmt.Sprintf("%s/%s/%s", s.cfg.PublicURL, s.cfg.Bucket, publicID)
}

func (s *Store) Upload(ctx context.Context, kind, filename string, r io.Reader, size int64, contentType string) (model.MediaRef, error) {
	folder, err := Folder(kind)
	if err != nil {
		return model.MediaRef{}, err
	}
	key := ObjectKey(folder, filename)
	if _, err = s.client.PutObject(ctx, s.cfg.Bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return model.MediaRef{}, fmt.Errorf("upload %s: %w", key, err)
	}
	return model.MediaRef{URL: s.URL(key), PublicID: key}, nil
}

func (s *Store) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	return s.client.RemoveObject(ctx, s.cfg.Bucket, publicID, minio.RemoveObjectOptions{})
}

func (s *Store) PresignUpload(ctx context.Context, kind, ownerID, filename string) (*UploadTicket, error) {
	folder, err := Folder(kind)
	if err != nil {
		return nil, err
	}
	key := OwnerKey(folder, ownerID, filename)
	u, err := s.client.PresignedPutObject(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", key, err)
	}
	return &UploadTicket{
		UploadURL: u.String(),
		Method:    "PUT",
		PublicID:  key,
		URL:       s.URL(key),
		Folder:    folder,
		ExpiresAt: time.Now().Add(s.cfg.PresignExpiry),
	}, nil
}

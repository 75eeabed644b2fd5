package testutil

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/oss"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// MediaStore 内存实现的 oss.MediaStore
type MediaStore struct {
	mu        sync.Mutex
	Objects   map[string][]byte
	Deleted   []string
	UploadErr error
	DeleteErr error
}

var _ oss.MediaStore = (*MediaStore)(nil)

func NewMediaStore() *MediaStore {
	return &MediaStore{Objects: map[string][]byte{}}
}

func (m *MediaStore) Upload(ctx context.Context, kind, filename string, r io.Reader, size int64, contentType string) (model.MediaRef, error) {
	if m.UploadErr != nil {
		return model.MediaRef{}, m.UploadErr
	}
	folder, err := oss.Folder(kind)
	if err != nil {
		return model.MediaRef{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return model.MediaRef{}, errors.Wrap(err, "read upload")
	}
	key := oss.ObjectKey(folder, filename)
	m.mu.Lock()
	m.Objects[key] = data
	m.mu.Unlock()
	return model.MediaRef{URL: m.URL(key), PublicID: key}, nil
}

func (m *MediaStore) URL(publicID string) string {
	return "http://media/" + publicID
}

func (m *MediaStore) Delete(ctx context.Context, publicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, publicID)
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Objects, publicID)
	return nil
}

func (m *MediaStore) PresignUpload(ctx context.Context, kind, ownerID, filename string) (*oss.UploadTicket, error) {
	folder, err := oss.Folder(kind)
	if err != nil {
		return nil, err
	}
	key := oss.OwnerKey(folder, ownerID, filename)
	return &oss.UploadTicket{
		UploadURL: "http://media/upload/" + key,
		Method:    "PUT",
		PublicID:  key,
		URL:       m.URL(key),
		Folder:    folder,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}

// Message 记录的一封通知
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier 只记录发送内容
type Notifier struct {
	mu       sync.Mutex
	Messages []Message
	Err      error
}

func (n *Notifier) Notify(ctx context.Context, to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.Messages = append(n.Messages, Message{To: to, Subject: subject, Body: body})
	return nil
}

func (n *Notifier) Last() (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Messages) == 0 {
		return Message{}, false
	}
	return n.Messages[len(n.Messages)-1], true
}

// FileHeader 构造一个上传文件，供服务层测试使用
func FileHeader(t testing.TB, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.NotEmpty(t, form.File[field])
	return form.File[field][0]
}

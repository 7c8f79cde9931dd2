package submission

import (
	"context"
	"sync"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/upload"
)

var _ uploader = &uploaderMock{}

type uploaderMock struct {
	UploadFunc func(ctx context.Context, file upload.File, target upload.Target, progress upload.ProgressFunc) (domain.ContentLocation, error)
	RemoveFunc func(ctx context.Context, path string) error

	calls struct {
		Upload []struct {
			Ctx      context.Context
			File     upload.File
			Target   upload.Target
			Progress upload.ProgressFunc
		}
		Remove []struct {
			Ctx  context.Context
			Path string
		}
	}
	lockUpload sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *uploaderMock) Upload(ctx context.Context, file upload.File, target upload.Target, progress upload.ProgressFunc) (domain.ContentLocation, error) {
	if mock.UploadFunc == nil {
		panic("uploaderMock.UploadFunc: method is nil but uploader.Upload was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		File     upload.File
		Target   upload.Target
		Progress upload.ProgressFunc
	}{Ctx: ctx, File: file, Target: target, Progress: progress}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, file, target, progress)
}

func (mock *uploaderMock) UploadCalls() []struct {
	Ctx      context.Context
	File     upload.File
	Target   upload.Target
	Progress upload.ProgressFunc
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *uploaderMock) Remove(ctx context.Context, path string) error {
	if mock.RemoveFunc == nil {
		panic("uploaderMock.RemoveFunc: method is nil but uploader.Remove was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{Ctx: ctx, Path: path}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, path)
}

func (mock *uploaderMock) RemoveCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

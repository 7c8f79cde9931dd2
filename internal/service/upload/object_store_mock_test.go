package upload

import (
	"context"
	"io"
	"sync"
)

var _ objectStore = &objectStoreMock{}

type objectStoreMock struct {
	PutFunc    func(ctx context.Context, path string, body io.Reader, size int64, contentType string, partSize int64) (string, error)
	RemoveFunc func(ctx context.Context, path string) error

	calls struct {
		Put []struct {
			Ctx         context.Context
			Path        string
			Body        io.Reader
			Size        int64
			ContentType string
			PartSize    int64
		}
		Remove []struct {
			Ctx  context.Context
			Path string
		}
	}
	lockPut    sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *objectStoreMock) Put(ctx context.Context, path string, body io.Reader, size int64, contentType string, partSize int64) (string, error) {
	if mock.PutFunc == nil {
		panic("objectStoreMock.PutFunc: method is nil but objectStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Path        string
		Body        io.Reader
		Size        int64
		ContentType string
		PartSize    int64
	}{Ctx: ctx, Path: path, Body: body, Size: size, ContentType: contentType, PartSize: partSize}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, path, body, size, contentType, partSize)
}

func (mock *objectStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Path        string
	Body        io.Reader
	Size        int64
	ContentType string
	PartSize    int64
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *objectStoreMock) Remove(ctx context.Context, path string) error {
	if mock.RemoveFunc == nil {
		panic("objectStoreMock.RemoveFunc: method is nil but objectStore.Remove was just called")
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

func (mock *objectStoreMock) RemoveCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

package vapi

import (
	"context"

	"github.com/Harshitk-cp/voicebridge/internal/dto"
	"github.com/Harshitk-cp/voicebridge/voice"
)

type FileManager struct {
	api FileAPI
}

var _ voice.FileManager = (*FileManager)(nil)

func NewFileManager(api FileAPI) *FileManager {
	return &FileManager{api: api}
}

// Create uploads params.File as multipart form data.
func (m *FileManager) Create(ctx context.Context, params voice.CreateFileParams) (*voice.VoiceFile, error) {
	if params.File == nil {
		return nil, voice.NewProviderError(ProviderID, "file is required", nil)
	}
	res, err := m.api.Create(ctx, fileUpload(params))
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	return mapFile(res), nil
}

// List fetches all files; the endpoint takes no limit, so it is
// applied locally.
func (m *FileManager) List(ctx context.Context, params *voice.ListFilesParams) (*voice.Page[voice.VoiceFile], error) {
	res, err := m.api.List(ctx)
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	items := make([]voice.VoiceFile, 0, len(res))
	for _, f := range res {
		items = append(items, *mapFile(f))
	}
	if params != nil {
		items = dto.Truncate(items, params.Limit)
	}
	return voice.SinglePage(items), nil
}

func (m *FileManager) Get(ctx context.Context, id string) (*voice.VoiceFile, error) {
	res, err := m.api.Get(ctx, id)
	if err != nil {
		return nil, wrapError(err, "File", id)
	}
	return mapFile(res), nil
}

func (m *FileManager) Update(ctx context.Context, id string, params voice.UpdateFileParams) (*voice.VoiceFile, error) {
	res, err := m.api.Update(ctx, id, updateFileRequest(params))
	if err != nil {
		return nil, wrapError(err, "File", id)
	}
	return mapFile(res), nil
}

func (m *FileManager) Delete(ctx context.Context, id string) error {
	if err := m.api.Delete(ctx, id); err != nil {
		return wrapError(err, "File", id)
	}
	return nil
}

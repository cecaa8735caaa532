package vapi

import (
	"context"
	"io"
	"strconv"
)

// sdkError mimics the Vapi SDK error, which exposes StatusCode().
type sdkError struct {
	code    int
	message string
}

func (e *sdkError) Error() string   { return e.message }
func (e *sdkError) StatusCode() int { return e.code }

// fakeResource is an in-memory Vapi collection keyed by "id". It
// implements every *API interface except FileAPI.
type fakeResource struct {
	prefix  string
	records map[string]map[string]any
	order   []string
	seq     int
	err     error

	createBodies []map[string]any
	updateBodies []map[string]any
	listQueries  []map[string]any
	listCalls    int
}

func newFakeResource(prefix string) *fakeResource {
	return &fakeResource{prefix: prefix, records: map[string]map[string]any{}}
}

func (f *fakeResource) seed(rec map[string]any) map[string]any {
	id, _ := rec["id"].(string)
	if id == "" {
		f.seq++
		id = f.prefix + strconv.Itoa(f.seq)
		rec["id"] = id
	}
	if _, ok := f.records[id]; !ok {
		f.order = append(f.order, id)
	}
	f.records[id] = rec
	return rec
}

func (f *fakeResource) notFound() error {
	return &sdkError{code: 404, message: "Not Found"}
}

func (f *fakeResource) Create(_ context.Context, body map[string]any) (map[string]any, error) {
	f.createBodies = append(f.createBodies, body)
	if f.err != nil {
		return nil, f.err
	}
	rec := map[string]any{}
	for k, v := range body {
		rec[k] = v
	}
	return f.seed(rec), nil
}

func (f *fakeResource) List(_ context.Context, query map[string]any) ([]map[string]any, error) {
	f.listCalls++
	f.listQueries = append(f.listQueries, query)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]map[string]any, 0, len(f.order))
	for _, id := range f.order {
		if rec, ok := f.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeResource) Get(_ context.Context, id string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	rec, ok := f.records[id]
	if !ok {
		return nil, f.notFound()
	}
	return rec, nil
}

func (f *fakeResource) Update(_ context.Context, id string, body map[string]any) (map[string]any, error) {
	f.updateBodies = append(f.updateBodies, body)
	if f.err != nil {
		return nil, f.err
	}
	rec, ok := f.records[id]
	if !ok {
		return nil, f.notFound()
	}
	for k, v := range body {
		rec[k] = v
	}
	return rec, nil
}

func (f *fakeResource) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.records[id]; !ok {
		return f.notFound()
	}
	delete(f.records, id)
	return nil
}

type fakeFileAPI struct {
	*fakeResource
	uploads  []FileUpload
	contents []string
}

func newFakeFileAPI() *fakeFileAPI {
	return &fakeFileAPI{fakeResource: newFakeResource("file_")}
}

func (f *fakeFileAPI) Create(_ context.Context, upload FileUpload) (map[string]any, error) {
	f.uploads = append(f.uploads, upload)
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(upload.File)
	if err != nil {
		return nil, err
	}
	f.contents = append(f.contents, string(data))
	rec := map[string]any{
		"name":   upload.Name,
		"status": "processing",
		"bytes":  float64(len(data)),
	}
	return f.seed(rec), nil
}

func (f *fakeFileAPI) List(ctx context.Context) ([]map[string]any, error) {
	return f.fakeResource.List(ctx, nil)
}

type fakeClient struct {
	assistants   *fakeResource
	calls        *fakeResource
	phoneNumbers *fakeResource
	tools        *fakeResource
	files        *fakeFileAPI
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		assistants:   newFakeResource("asst_"),
		calls:        newFakeResource("call_"),
		phoneNumbers: newFakeResource("pn_"),
		tools:        newFakeResource("tool_"),
		files:        newFakeFileAPI(),
	}
}

func (f *fakeClient) client() *Client {
	return &Client{
		Assistants:   f.assistants,
		Calls:        f.calls,
		PhoneNumbers: f.phoneNumbers,
		Tools:        f.tools,
		Files:        f.files,
	}
}

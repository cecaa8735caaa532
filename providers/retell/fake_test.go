package retell

import (
	"context"
	"fmt"
	"strconv"
)

// statusError mimics an SDK error exposing the HTTP status as Status().
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string { return e.message }
func (e *statusError) Status() int   { return e.status }

// codeError exposes the status through the other conventional name.
type codeError struct {
	code    int
	message string
}

func (e *codeError) Error() string   { return e.message }
func (e *codeError) StatusCode() int { return e.code }

// store is an in-memory record set keyed by an id field, shared by the
// fake resource clients.
type store struct {
	idKey   string
	prefix  string
	records map[string]map[string]any
	order   []string
	next    int
}

func newStore(idKey, prefix string) *store {
	return &store{idKey: idKey, prefix: prefix, records: map[string]map[string]any{}}
}

func (s *store) put(rec map[string]any) map[string]any {
	id, _ := rec[s.idKey].(string)
	if id == "" {
		s.next++
		id = s.prefix + strconv.Itoa(s.next)
		rec[s.idKey] = id
	}
	if _, ok := s.records[id]; !ok {
		s.order = append(s.order, id)
	}
	s.records[id] = rec
	return rec
}

func (s *store) get(id string) (map[string]any, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, &statusError{status: 404, message: fmt.Sprintf("%s not found", id)}
	}
	return rec, nil
}

func (s *store) all() []map[string]any {
	out := make([]map[string]any, 0, len(s.order))
	for _, id := range s.order {
		if rec, ok := s.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out
}

func (s *store) remove(id string) error {
	if _, ok := s.records[id]; !ok {
		return &statusError{status: 404, message: fmt.Sprintf("%s not found", id)}
	}
	delete(s.records, id)
	return nil
}

type fakeAgentAPI struct {
	store *store
	err   error

	createBodies []map[string]any
	updateBodies []map[string]any
	listCalls    int
}

func newFakeAgentAPI() *fakeAgentAPI {
	return &fakeAgentAPI{store: newStore("agent_id", "agent_")}
}

func (f *fakeAgentAPI) Create(_ context.Context, body map[string]any) (map[string]any, error) {
	f.createBodies = append(f.createBodies, body)
	if f.err != nil {
		return nil, f.err
	}
	rec := map[string]any{}
	for k, v := range body {
		rec[k] = v
	}
	return f.store.put(rec), nil
}

func (f *fakeAgentAPI) List(context.Context) ([]map[string]any, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.store.all(), nil
}

func (f *fakeAgentAPI) Retrieve(_ context.Context, id string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.store.get(id)
}

func (f *fakeAgentAPI) Update(_ context.Context, id string, body map[string]any) (map[string]any, error) {
	f.updateBodies = append(f.updateBodies, body)
	if f.err != nil {
		return nil, f.err
	}
	rec, err := f.store.get(id)
	if err != nil {
		return nil, err
	}
	for k, v := range body {
		rec[k] = v
	}
	return rec, nil
}

func (f *fakeAgentAPI) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	return f.store.remove(id)
}

type fakeCallAPI struct {
	store *store
	err   error

	createBodies []map[string]any
	listQueries  []map[string]any
	listCalls    int
}

func newFakeCallAPI() *fakeCallAPI {
	return &fakeCallAPI{store: newStore("call_id", "call_")}
}

func (f *fakeCallAPI) CreatePhoneCall(_ context.Context, body map[string]any) (map[string]any, error) {
	f.createBodies = append(f.createBodies, body)
	if f.err != nil {
		return nil, f.err
	}
	rec := map[string]any{"call_status": "registered"}
	for k, v := range body {
		rec[k] = v
	}
	return f.store.put(rec), nil
}

func (f *fakeCallAPI) List(_ context.Context, query map[string]any) ([]map[string]any, error) {
	f.listCalls++
	f.listQueries = append(f.listQueries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.store.all(), nil
}

func (f *fakeCallAPI) Retrieve(_ context.Context, id string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.store.get(id)
}

func (f *fakeCallAPI) Update(_ context.Context, id string, body map[string]any) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	rec, err := f.store.get(id)
	if err != nil {
		return nil, err
	}
	for k, v := range body {
		rec[k] = v
	}
	return rec, nil
}

func (f *fakeCallAPI) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	return f.store.remove(id)
}

type fakePhoneNumberAPI struct {
	store *store
	err   error

	createCalls  int
	createBodies []map[string]any
}

func newFakePhoneNumberAPI() *fakePhoneNumberAPI {
	return &fakePhoneNumberAPI{store: newStore("phone_number", "+1415555000")}
}

func (f *fakePhoneNumberAPI) Create(_ context.Context, body map[string]any) (map[string]any, error) {
	f.createCalls++
	f.createBodies = append(f.createBodies, body)
	if f.err != nil {
		return nil, f.err
	}
	rec := map[string]any{}
	for k, v := range body {
		rec[k] = v
	}
	return f.store.put(rec), nil
}

func (f *fakePhoneNumberAPI) List(context.Context) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.store.all(), nil
}

func (f *fakePhoneNumberAPI) Retrieve(_ context.Context, number string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.store.get(number)
}

func (f *fakePhoneNumberAPI) Update(_ context.Context, number string, body map[string]any) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	rec, err := f.store.get(number)
	if err != nil {
		return nil, err
	}
	for k, v := range body {
		rec[k] = v
	}
	return rec, nil
}

func (f *fakePhoneNumberAPI) Delete(_ context.Context, number string) error {
	if f.err != nil {
		return f.err
	}
	return f.store.remove(number)
}

type fakeKnowledgeBaseAPI struct {
	store *store
	err   error
}

func newFakeKnowledgeBaseAPI() *fakeKnowledgeBaseAPI {
	return &fakeKnowledgeBaseAPI{store: newStore("knowledge_base_id", "kb_")}
}

func (f *fakeKnowledgeBaseAPI) Create(_ context.Context, body map[string]any) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	rec := map[string]any{"status": "in_progress"}
	for k, v := range body {
		rec[k] = v
	}
	return f.store.put(rec), nil
}

func (f *fakeKnowledgeBaseAPI) List(context.Context) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.store.all(), nil
}

func (f *fakeKnowledgeBaseAPI) Retrieve(_ context.Context, id string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.store.get(id)
}

func (f *fakeKnowledgeBaseAPI) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	return f.store.remove(id)
}

type fakeClient struct {
	agents        *fakeAgentAPI
	calls         *fakeCallAPI
	phoneNumbers  *fakePhoneNumberAPI
	knowledgeBase *fakeKnowledgeBaseAPI
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		agents:        newFakeAgentAPI(),
		calls:         newFakeCallAPI(),
		phoneNumbers:  newFakePhoneNumberAPI(),
		knowledgeBase: newFakeKnowledgeBaseAPI(),
	}
}

func (f *fakeClient) client() *Client {
	return &Client{
		Agent:         f.agents,
		Call:          f.calls,
		PhoneNumber:   f.phoneNumbers,
		KnowledgeBase: f.knowledgeBase,
	}
}

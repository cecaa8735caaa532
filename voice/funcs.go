package voice

import "context"

// The *Funcs types let an externally authored provider be assembled
// from plain functions. A nil function is a missing method: DefineProvider
// reports it, and calling it returns an *Error.

type methodSet interface {
	hasMethod(name string) bool
}

func notImplemented(manager, method string) error {
	return newError("%s.%s is not implemented", manager, method)
}

type AgentFuncs struct {
	CreateFunc func(ctx context.Context, params CreateAgentParams) (*Agent, error)
	ListFunc   func(ctx context.Context, params *ListAgentsParams) (*Page[Agent], error)
	GetFunc    func(ctx context.Context, id string) (*Agent, error)
	UpdateFunc func(ctx context.Context, id string, params UpdateAgentParams) (*Agent, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (f *AgentFuncs) hasMethod(name string) bool {
	switch name {
	case "create":
		return f.CreateFunc != nil
	case "list":
		return f.ListFunc != nil
	case "get":
		return f.GetFunc != nil
	case "update":
		return f.UpdateFunc != nil
	case "delete":
		return f.DeleteFunc != nil
	}
	return false
}

func (f *AgentFuncs) Create(ctx context.Context, params CreateAgentParams) (*Agent, error) {
	if f.CreateFunc == nil {
		return nil, notImplemented("agents", "create")
	}
	return f.CreateFunc(ctx, params)
}

func (f *AgentFuncs) List(ctx context.Context, params *ListAgentsParams) (*Page[Agent], error) {
	if f.ListFunc == nil {
		return nil, notImplemented("agents", "list")
	}
	return f.ListFunc(ctx, params)
}

func (f *AgentFuncs) Get(ctx context.Context, id string) (*Agent, error) {
	if f.GetFunc == nil {
		return nil, notImplemented("agents", "get")
	}
	return f.GetFunc(ctx, id)
}

func (f *AgentFuncs) Update(ctx context.Context, id string, params UpdateAgentParams) (*Agent, error) {
	if f.UpdateFunc == nil {
		return nil, notImplemented("agents", "update")
	}
	return f.UpdateFunc(ctx, id, params)
}

func (f *AgentFuncs) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc == nil {
		return notImplemented("agents", "delete")
	}
	return f.DeleteFunc(ctx, id)
}

type CallFuncs struct {
	CreateFunc func(ctx context.Context, params CreateCallParams) (*Call, error)
	ListFunc   func(ctx context.Context, params *ListCallsParams) (*Page[Call], error)
	GetFunc    func(ctx context.Context, id string) (*Call, error)
	UpdateFunc func(ctx context.Context, id string, params UpdateCallParams) (*Call, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (f *CallFuncs) hasMethod(name string) bool {
	switch name {
	case "create":
		return f.CreateFunc != nil
	case "list":
		return f.ListFunc != nil
	case "get":
		return f.GetFunc != nil
	case "update":
		return f.UpdateFunc != nil
	case "delete":
		return f.DeleteFunc != nil
	}
	return false
}

func (f *CallFuncs) Create(ctx context.Context, params CreateCallParams) (*Call, error) {
	if f.CreateFunc == nil {
		return nil, notImplemented("calls", "create")
	}
	return f.CreateFunc(ctx, params)
}

func (f *CallFuncs) List(ctx context.Context, params *ListCallsParams) (*Page[Call], error) {
	if f.ListFunc == nil {
		return nil, notImplemented("calls", "list")
	}
	return f.ListFunc(ctx, params)
}

func (f *CallFuncs) Get(ctx context.Context, id string) (*Call, error) {
	if f.GetFunc == nil {
		return nil, notImplemented("calls", "get")
	}
	return f.GetFunc(ctx, id)
}

func (f *CallFuncs) Update(ctx context.Context, id string, params UpdateCallParams) (*Call, error) {
	if f.UpdateFunc == nil {
		return nil, notImplemented("calls", "update")
	}
	return f.UpdateFunc(ctx, id, params)
}

func (f *CallFuncs) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc == nil {
		return notImplemented("calls", "delete")
	}
	return f.DeleteFunc(ctx, id)
}

type PhoneNumberFuncs struct {
	ListFunc func(ctx context.Context, params *ListPhoneNumbersParams) (*Page[PhoneNumber], error)
	GetFunc  func(ctx context.Context, id string) (*PhoneNumber, error)
}

func (f *PhoneNumberFuncs) hasMethod(name string) bool {
	switch name {
	case "list":
		return f.ListFunc != nil
	case "get":
		return f.GetFunc != nil
	}
	return false
}

func (f *PhoneNumberFuncs) List(ctx context.Context, params *ListPhoneNumbersParams) (*Page[PhoneNumber], error) {
	if f.ListFunc == nil {
		return nil, notImplemented("phoneNumbers", "list")
	}
	return f.ListFunc(ctx, params)
}

func (f *PhoneNumberFuncs) Get(ctx context.Context, id string) (*PhoneNumber, error) {
	if f.GetFunc == nil {
		return nil, notImplemented("phoneNumbers", "get")
	}
	return f.GetFunc(ctx, id)
}

type ToolFuncs struct {
	CreateFunc func(ctx context.Context, params CreateToolParams) (*Tool, error)
	ListFunc   func(ctx context.Context, params *ListToolsParams) (*Page[Tool], error)
	GetFunc    func(ctx context.Context, id string) (*Tool, error)
	UpdateFunc func(ctx context.Context, id string, params UpdateToolParams) (*Tool, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (f *ToolFuncs) hasMethod(name string) bool {
	switch name {
	case "create":
		return f.CreateFunc != nil
	case "list":
		return f.ListFunc != nil
	case "get":
		return f.GetFunc != nil
	case "update":
		return f.UpdateFunc != nil
	case "delete":
		return f.DeleteFunc != nil
	}
	return false
}

func (f *ToolFuncs) Create(ctx context.Context, params CreateToolParams) (*Tool, error) {
	if f.CreateFunc == nil {
		return nil, notImplemented("tools", "create")
	}
	return f.CreateFunc(ctx, params)
}

func (f *ToolFuncs) List(ctx context.Context, params *ListToolsParams) (*Page[Tool], error) {
	if f.ListFunc == nil {
		return nil, notImplemented("tools", "list")
	}
	return f.ListFunc(ctx, params)
}

func (f *ToolFuncs) Get(ctx context.Context, id string) (*Tool, error) {
	if f.GetFunc == nil {
		return nil, notImplemented("tools", "get")
	}
	return f.GetFunc(ctx, id)
}

func (f *ToolFuncs) Update(ctx context.Context, id string, params UpdateToolParams) (*Tool, error) {
	if f.UpdateFunc == nil {
		return nil, notImplemented("tools", "update")
	}
	return f.UpdateFunc(ctx, id, params)
}

func (f *ToolFuncs) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc == nil {
		return notImplemented("tools", "delete")
	}
	return f.DeleteFunc(ctx, id)
}

type FileFuncs struct {
	CreateFunc func(ctx context.Context, params CreateFileParams) (*VoiceFile, error)
	ListFunc   func(ctx context.Context, params *ListFilesParams) (*Page[VoiceFile], error)
	GetFunc    func(ctx context.Context, id string) (*VoiceFile, error)
	UpdateFunc func(ctx context.Context, id string, params UpdateFileParams) (*VoiceFile, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (f *FileFuncs) hasMethod(name string) bool {
	switch name {
	case "create":
		return f.CreateFunc != nil
	case "list":
		return f.ListFunc != nil
	case "get":
		return f.GetFunc != nil
	case "update":
		return f.UpdateFunc != nil
	case "delete":
		return f.DeleteFunc != nil
	}
	return false
}

func (f *FileFuncs) Create(ctx context.Context, params CreateFileParams) (*VoiceFile, error) {
	if f.CreateFunc == nil {
		return nil, notImplemented("files", "create")
	}
	return f.CreateFunc(ctx, params)
}

func (f *FileFuncs) List(ctx context.Context, params *ListFilesParams) (*Page[VoiceFile], error) {
	if f.ListFunc == nil {
		return nil, notImplemented("files", "list")
	}
	return f.ListFunc(ctx, params)
}

func (f *FileFuncs) Get(ctx context.Context, id string) (*VoiceFile, error) {
	if f.GetFunc == nil {
		return nil, notImplemented("files", "get")
	}
	return f.GetFunc(ctx, id)
}

func (f *FileFuncs) Update(ctx context.Context, id string, params UpdateFileParams) (*VoiceFile, error) {
	if f.UpdateFunc == nil {
		return nil, notImplemented("files", "update")
	}
	return f.UpdateFunc(ctx, id, params)
}

func (f *FileFuncs) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc == nil {
		return notImplemented("files", "delete")
	}
	return f.DeleteFunc(ctx, id)
}

type KnowledgeBaseFuncs struct {
	CreateFunc func(ctx context.Context, params CreateKnowledgeBaseParams) (*KnowledgeBase, error)
	ListFunc   func(ctx context.Context, params *ListKnowledgeBaseParams) (*Page[KnowledgeBase], error)
	GetFunc    func(ctx context.Context, id string) (*KnowledgeBase, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (f *KnowledgeBaseFuncs) hasMethod(name string) bool {
	switch name {
	case "create":
		return f.CreateFunc != nil
	case "list":
		return f.ListFunc != nil
	case "get":
		return f.GetFunc != nil
	case "delete":
		return f.DeleteFunc != nil
	}
	return false
}

func (f *KnowledgeBaseFuncs) Create(ctx context.Context, params CreateKnowledgeBaseParams) (*KnowledgeBase, error) {
	if f.CreateFunc == nil {
		return nil, notImplemented("knowledgeBase", "create")
	}
	return f.CreateFunc(ctx, params)
}

func (f *KnowledgeBaseFuncs) List(ctx context.Context, params *ListKnowledgeBaseParams) (*Page[KnowledgeBase], error) {
	if f.ListFunc == nil {
		return nil, notImplemented("knowledgeBase", "list")
	}
	return f.ListFunc(ctx, params)
}

func (f *KnowledgeBaseFuncs) Get(ctx context.Context, id string) (*KnowledgeBase, error) {
	if f.GetFunc == nil {
		return nil, notImplemented("knowledgeBase", "get")
	}
	return f.GetFunc(ctx, id)
}

func (f *KnowledgeBaseFuncs) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc == nil {
		return notImplemented("knowledgeBase", "delete")
	}
	return f.DeleteFunc(ctx, id)
}

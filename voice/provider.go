package voice

import "context"

type AgentManager interface {
	Create(ctx context.Context, params CreateAgentParams) (*Agent, error)
	List(ctx context.Context, params *ListAgentsParams) (*Page[Agent], error)
	Get(ctx context.Context, id string) (*Agent, error)
	Update(ctx context.Context, id string, params UpdateAgentParams) (*Agent, error)
	Delete(ctx context.Context, id string) error
}

type CallManager interface {
	Create(ctx context.Context, params CreateCallParams) (*Call, error)
	List(ctx context.Context, params *ListCallsParams) (*Page[Call], error)
	Get(ctx context.Context, id string) (*Call, error)
	Update(ctx context.Context, id string, params UpdateCallParams) (*Call, error)
	Delete(ctx context.Context, id string) error
}

type PhoneNumberManager interface {
	List(ctx context.Context, params *ListPhoneNumbersParams) (*Page[PhoneNumber], error)
	Get(ctx context.Context, id string) (*PhoneNumber, error)
}

// PhoneNumberProvisioner is implemented by phone number managers whose
// vendor supports buying, editing and releasing numbers. Callers
// type-assert a PhoneNumberManager to reach it.
type PhoneNumberProvisioner interface {
	Create(ctx context.Context, params CreatePhoneNumberParams) (*PhoneNumber, error)
	Update(ctx context.Context, id string, params UpdatePhoneNumberParams) (*PhoneNumber, error)
	Delete(ctx context.Context, id string) error
}

type ToolManager interface {
	Create(ctx context.Context, params CreateToolParams) (*Tool, error)
	List(ctx context.Context, params *ListToolsParams) (*Page[Tool], error)
	Get(ctx context.Context, id string) (*Tool, error)
	Update(ctx context.Context, id string, params UpdateToolParams) (*Tool, error)
	Delete(ctx context.Context, id string) error
}

type FileManager interface {
	Create(ctx context.Context, params CreateFileParams) (*VoiceFile, error)
	List(ctx context.Context, params *ListFilesParams) (*Page[VoiceFile], error)
	Get(ctx context.Context, id string) (*VoiceFile, error)
	Update(ctx context.Context, id string, params UpdateFileParams) (*VoiceFile, error)
	Delete(ctx context.Context, id string) error
}

// KnowledgeBaseManager has no Update; knowledge bases are rebuilt, not edited.
type KnowledgeBaseManager interface {
	Create(ctx context.Context, params CreateKnowledgeBaseParams) (*KnowledgeBase, error)
	List(ctx context.Context, params *ListKnowledgeBaseParams) (*Page[KnowledgeBase], error)
	Get(ctx context.Context, id string) (*KnowledgeBase, error)
	Delete(ctx context.Context, id string) error
}

// Provider is the vendor-neutral capability record for one vendor.
// Tools, Files and KnowledgeBase are nil when the vendor lacks them;
// check before use.
type Provider struct {
	ProviderID    string
	Agents        AgentManager
	Calls         CallManager
	PhoneNumbers  PhoneNumberManager
	Tools         ToolManager
	Files         FileManager
	KnowledgeBase KnowledgeBaseManager
}

type Capability string

const (
	CapabilityAgents            Capability = "agents"
	CapabilityCalls             Capability = "calls"
	CapabilityPhoneNumbers      Capability = "phoneNumbers"
	CapabilityPhoneProvisioning Capability = "phoneProvisioning"
	CapabilityTools             Capability = "tools"
	CapabilityFiles             Capability = "files"
	CapabilityKnowledgeBase     Capability = "knowledgeBase"
)

// Supports reports whether the provider exposes the given capability.
func (p *Provider) Supports(c Capability) bool {
	if p == nil {
		return false
	}
	switch c {
	case CapabilityAgents:
		return !isNil(p.Agents)
	case CapabilityCalls:
		return !isNil(p.Calls)
	case CapabilityPhoneNumbers:
		return !isNil(p.PhoneNumbers)
	case CapabilityPhoneProvisioning:
		if isNil(p.PhoneNumbers) {
			return false
		}
		_, ok := p.PhoneNumbers.(PhoneNumberProvisioner)
		return ok
	case CapabilityTools:
		return !isNil(p.Tools)
	case CapabilityFiles:
		return !isNil(p.Files)
	case CapabilityKnowledgeBase:
		return !isNil(p.KnowledgeBase)
	default:
		return false
	}
}

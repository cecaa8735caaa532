/*
Package voice is the vendor-neutral surface of voicebridge.

It defines the unified entities (Agent, Call, PhoneNumber, Tool, VoiceFile,
KnowledgeBase), their parameter types, the manager interfaces every vendor
implements, and the error taxonomy all vendor failures are normalized into:

	*Error                  generic library failure
	*ProviderError          "[vendor] message", wraps the vendor error as Cause
	*NotFoundError          vendor 404 for a known resource and id
	*AuthenticationError    vendor 401

Vendor packages (providers/retell, providers/vapi) translate between these
types and each vendor's REST representation. A Provider value bundles one
vendor's managers; Tools, Files and KnowledgeBase are nil when unsupported.

List calls return a single Page with HasMore false. Vendor cursors are not
chained through this layer.

Filters a vendor cannot apply are rejected with a ProviderError naming
them instead of being dropped, so a caller never gets unfiltered results
back from a filtered request.
*/
package voice

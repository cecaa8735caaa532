package retell

import (
	"errors"

	"github.com/Harshitk-cp/voicebridge/voice"
)

// wrapError converts a client failure into the voice error taxonomy.
// resource and id are set only where a 404 names a specific record.
func wrapError(err error, resource, id string) error {
	if err == nil {
		return nil
	}
	var pe *voice.ProviderError
	if errors.As(err, &pe) && pe.Provider == ProviderID {
		return err
	}

	status := voice.Status(err)
	if status == 0 {
		status = voice.StatusCode(err)
	}
	switch {
	case status == 401:
		return voice.NewAuthenticationError(ProviderID)
	case status == 404 && resource != "" && id != "":
		return voice.NewNotFoundError(ProviderID, resource, id)
	}
	return voice.NewProviderError(ProviderID, err.Error(), err)
}

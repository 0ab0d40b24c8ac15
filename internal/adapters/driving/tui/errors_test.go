package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingCorpusService.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingCorpusService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingCorpusService.Error(), "corpus service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}

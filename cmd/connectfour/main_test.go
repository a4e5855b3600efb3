package main

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogging(t *testing.T) {
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	var buf bytes.Buffer

	setupLogging(false, &buf)
	log.Println("No .env file found")
	assert.Empty(t, buf.String())

	setupLogging(true, &buf)
	log.Println("No .env file found")
	assert.Contains(t, buf.String(), "No .env file found")
}

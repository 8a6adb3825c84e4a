package stt_test

import (
	"github.com/saptohadi/wicara/adapters/stt"
	"github.com/saptohadi/wicara/domain/repositories"
)

var (
	_ repositories.Transcriber = &stt.GoogleTranscriber{}
	_ repositories.Transcriber = &stt.GeminiTranscriber{}
	_ repositories.Transcriber = &stt.MockTranscriber{}
)

package msgproducer

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const serviceName = "msg-producer"

type KafkaWriter interface {
	io.Closer
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type nonceFactory func(size int) ([]byte, error)

//go:generate options-gen -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	wr           KafkaWriter  `option:"mandatory" validate:"required"`
	encryptKey   string       `validate:"omitempty,hexadecimal"`
	nonceFactory nonceFactory
}

// Service journals the messages accepted by the queue into a Kafka topic.
type Service struct {
	wr     KafkaWriter
	sealer *sealer
	lg     *zap.Logger
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	s := &Service{
		wr: opts.wr,
		lg: zap.L().Named(serviceName),
	}

	if opts.encryptKey == "" {
		s.lg.Info("journal records are not encrypted")
		return s, nil
	}

	sl, err := newSealer(opts.encryptKey, opts.nonceFactory)
	if err != nil {
		return nil, err
	}
	s.sealer = sl
	s.lg.Info("journal records are encrypted", zap.Int("nonce_size", sl.aead.NonceSize()))

	return s, nil
}

// sealer encrypts a record with AES-GCM and prepends the nonce to the ciphertext.
type sealer struct {
	aead  cipher.AEAD
	nonce nonceFactory
}

func newSealer(hexKey string, nf nonceFactory) (*sealer, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decode encrypt key: %v", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes cipher: %v", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("gcm: %v", err)
	}

	if nf == nil {
		nf = randomNonce
	}
	return &sealer{aead: aead, nonce: nf}, nil
}

func (s *sealer) seal(plain []byte) ([]byte, error) {
	nonce, err := s.nonce(s.aead.NonceSize())
	if err != nil {
		return nil, fmt.Errorf("nonce: %v", err)
	}
	return s.aead.Seal(nonce, nonce, plain, nil), nil
}

func randomNonce(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

package opengraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/utils"
)

// Defaults are the fields pre-populated at capture time
type Defaults struct {
	PopupName          string
	PopupWidth         int
	PopupHeight        int
	KakaoImageWidth    int
	KakaoImageHeight   int
	KakaoWebButtonText string
	CopyPrompt         string
}

// DefaultFields returns the stock defaults
func DefaultFields() Defaults {
	return Defaults{
		PopupName:          "shareSNS",
		PopupWidth:         660,
		PopupHeight:        380,
		KakaoImageWidth:    606,
		KakaoImageHeight:   606,
		KakaoWebButtonText: "이벤트 참여하기",
		CopyPrompt:         "Ctrl+C를 눌러 복사하세요.",
	}
}

// Store holds the Open Graph data captured once per page and builds the
// effective data for each share call
type Store struct {
	original domain.OpenGraph
	logger   *utils.Logger
}

// Capture scans source once and layers the scanned values over defaults.
// A failed scan is logged and leaves the defaults only.
func Capture(ctx context.Context, source domain.MetadataSource, defaults Defaults, logger *utils.Logger) *Store {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	logger = logger.WithComponent("opengraph")

	var scanned map[string]string
	if source != nil {
		var err error
		scanned, err = source.Scan(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Open Graph scan failed, using defaults")
			scanned = nil
		}
	}

	og := defaults.fields(scanned)
	for k, v := range scanned {
		og[k] = v
	}

	logger.Debug().Int("fields", len(scanned)).Msg("Captured Open Graph data")
	return &Store{original: og, logger: logger}
}

// NewStore wraps an already captured mapping
func NewStore(original map[string]string, logger *utils.Logger) *Store {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Store{original: domain.OpenGraph(original).Clone(), logger: logger.WithComponent("opengraph")}
}

func (d Defaults) fields(scanned map[string]string) domain.OpenGraph {
	og := domain.OpenGraph{}
	set := func(key, value string) {
		if value != "" {
			og[key] = value
		}
	}
	setInt := func(key string, value int) {
		if value > 0 {
			og[key] = strconv.Itoa(value)
		}
	}

	set(domain.KeyPopupName, d.PopupName)
	setInt(domain.KeyPopupWidth, d.PopupWidth)
	setInt(domain.KeyPopupHeight, d.PopupHeight)
	setInt(domain.KeyKakaoImageWidth, d.KakaoImageWidth)
	setInt(domain.KeyKakaoImageHeight, d.KakaoImageHeight)
	set(domain.KeyKakaoWebButtonText, d.KakaoWebButtonText)
	set(domain.KeyCopyURLPrompt, d.CopyPrompt)

	label := scanned[domain.OGTitle]
	if label == "" {
		label = scanned[domain.OGDescription]
	}
	set(domain.KeyKakaoTalkLabel, label)

	return og
}

// Original returns a copy of the captured data
func (s *Store) Original() domain.OpenGraph {
	return s.original.Clone()
}

// Merge returns a new mapping with overrides layered over the original.
// Overrides that cannot be read are logged and treated as empty.
func (s *Store) Merge(overrides any) domain.OpenGraph {
	merged := s.original.Clone()

	extra, err := ParseOverrides(overrides)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Ignoring override data")
		return merged
	}

	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// ParseOverrides reads per-call override data. Accepted: nil, OpenGraph,
// map[string]string, map[string]any and a JSON object as string or bytes.
// Null values are dropped.
func ParseOverrides(overrides any) (map[string]string, error) {
	switch v := overrides.(type) {
	case nil:
		return nil, nil
	case domain.OpenGraph:
		return v, nil
	case map[string]string:
		return v, nil
	case map[string]any:
		return stringify(v)
	case string:
		return parseJSON([]byte(v))
	case []byte:
		return parseJSON(v)
	case json.RawMessage:
		return parseJSON(v)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", domain.ErrInvalidOverride, overrides)
	}
}

func parseJSON(data []byte) (map[string]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidOverride, err)
	}
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON object", domain.ErrInvalidOverride)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: JSON %T is not an object", domain.ErrInvalidOverride, raw)
	}
	return stringify(obj)
}

func stringify(in map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			out[k] = val
		case json.Number:
			out[k] = val.String()
		case bool, int, int32, int64, float32, float64, uint, uint32, uint64:
			out[k] = fmt.Sprint(val)
		case fmt.Stringer:
			out[k] = val.String()
		default:
			data, err := json.Marshal(val)
			if err != nil {
				return nil, fmt.Errorf("%w: field %q: %v", domain.ErrInvalidOverride, k, err)
			}
			out[k] = string(data)
		}
	}
	return out, nil
}

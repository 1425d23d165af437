package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// 모든 메트릭은 비어 있지 않은 help 설명을 가져야 한다
func TestMetricHelpDescription(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	// Gather는 최소 한 번 기록된 시계열만 내보내므로 전부 한 번씩 건드린다
	m.RecordHTTPRequest("GET", "/test", 200, 0)
	m.RecordDBQuery("select", "meetings", 0, nil)
	m.RecordExternalAPICall("/api/test", "POST", 200, 0, nil)
	m.IncrementMeetingCreated("roulette")
	m.IncrementVoteCast()
	m.IncrementRouletteSpun()
	m.SetMeetingsTotal(1)

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}
	if len(metricFamilies) == 0 {
		t.Fatal("Expected at least one metric family")
	}

	for _, mf := range metricFamilies {
		name := mf.GetName()
		help := mf.GetHelp()

		if len(strings.TrimSpace(help)) == 0 {
			t.Errorf("Metric '%s' has an empty help description", name)
		}
		if !strings.HasPrefix(name, namespace+"_") {
			t.Errorf("Metric '%s' is missing the '%s' namespace", name, namespace)
		}
	}
}

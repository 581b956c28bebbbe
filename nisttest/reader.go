// Package nisttest provides fixtures shared across the module's _test.go
// files: golden-file loaders, a scriptable io.Reader/io.Writer double, and
// byte-level builders for minimal valid records.
package nisttest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// FixedClock returns a clock func pinned to t, for injecting into
// nist.Reader.Now so debug-log timestamp assertions are deterministic.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// LoadJSON loads testdata/<name> and unmarshals it into target.
func LoadJSON(t *testing.T, name string, target interface{}) {
	b := loadBytes(t, fmt.Sprintf("testdata/%v", name), 2)
	if err := json.Unmarshal(b, target); err != nil {
		t.Fatal(fmt.Errorf("nisttest.LoadJSON failure: %w", err))
	}
}

// LoadBytes loads the raw contents of testdata/<name>.
func LoadBytes(t *testing.T, name string) []byte {
	return loadBytes(t, fmt.Sprintf("testdata/%v", name), 2)
}

func loadBytes(t *testing.T, name string, callDepth int) []byte {
	_, callerFile, _, _ := runtime.Caller(callDepth)
	basepath := filepath.Dir(callerFile)

	path := filepath.Join(basepath, name)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// ReadResult is one scripted response for MockReaderWriter.Read.
type ReadResult struct {
	Read []byte
	Err  error
}

// WriteResult is one scripted response for MockReaderWriter.Write.
type WriteResult struct {
	N   int
	Err error
}

// MockReaderWriter replays a fixed script of Read/Write outcomes, letting
// tests simulate a serial device's partial reads or write failures without
// a real transport (device.OpenSerialSource's caller-facing contract).
type MockReaderWriter struct {
	Reads      []ReadResult
	Writes     []WriteResult
	readIndex  int
	writeIndex int
}

func (m *MockReaderWriter) Read(p []byte) (n int, err error) {
	r := m.Reads[m.readIndex]
	m.readIndex++
	if r.Err != nil {
		return len(r.Read), r.Err
	}
	n = copy(p, r.Read)
	return n, nil
}

func (m *MockReaderWriter) Write(p []byte) (n int, err error) {
	w := m.Writes[m.writeIndex]
	m.writeIndex++
	return w.N, w.Err
}

package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"gotest.tools/assert"
)

var testSettings configSettings
var cfgFile = "./test/config.conf"

// 2024-03-05 09:15:30 UTC
var testStart = time.Date(2024, time.March, 5, 9, 15, 30, 0, time.UTC)

func TestMain(m *testing.M) {
	var err error
	testSettings, err = loadSettings(cfgFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	testlog, err := setupLogging(testSettings, false)
	if err != nil {
		log.Fatal(err.Error())
	}

	// run the tests
	code := m.Run()
	testlog.Close()

	os.Exit(code)
}

func logCaller(pc uintptr, file string, line int, ok bool) {
	if !ok {
		file = "?"
		line = 0
	}

	fn := runtime.FuncForPC(pc)
	var fnName string
	if fn == nil {
		fnName = "?()"
	} else {
		dotName := filepath.Ext(fn.Name())
		fnName = strings.TrimLeft(dotName, ".") + "()"
	}

	log.Printf("Starting %s (%s:%d)", fnName, filepath.Base(file), line)
}

func initTestRuntime(settings configSettings) runtimeConfig {
	return runtimeConfig{
		settings: settings,
		clock:    clockwork.NewFakeClockAt(testStart),
		comms:    initCommChannels(),
		display:  &logDisplay{},
		buttons:  &noButtons{},
		battery:  &noBattery{},
		logger:   newLogger(settings, "Test"),
	}
}

func testRuntime() (runtimeConfig, clockwork.FakeClock, commChannels) {
	// make rt for test, log the start of the test
	logCaller(runtime.Caller(1))
	rt := initTestRuntime(testSettings.clone())
	return rt, rt.clock.(clockwork.FakeClock), rt.comms
}

// advance the clock in steps, letting the goroutine under test go back to sleep each time
func testBlockDuration(clock clockwork.FakeClock, step time.Duration, total time.Duration) {
	for d := time.Duration(0); d < total; d += step {
		clock.BlockUntil(1)
		clock.Advance(step)
	}
	clock.BlockUntil(1)
}

func testQuit(rt runtimeConfig, clock clockwork.FakeClock, step time.Duration) {
	rt.comms.shutdown()
	clock.Advance(step)
}

func faceMsgRead(t *testing.T, c chan faceMsg) faceMsg {
	select {
	case e := <-c:
		return e
	default:
		assert.Assert(t, false, "Nothing to read from face channel")
	}
	return faceMsg{}
}

func faceMsgNoRead(t *testing.T, c chan faceMsg) {
	select {
	case e := <-c:
		assert.Assert(t, false, "Got an unexpected value on face channel: %+v", e)
	default:
	}
}

// syncBuffer collects log output while goroutines may still be writing
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (sb *syncBuffer) Write(p []byte) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.Write(p)
}

func (sb *syncBuffer) String() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.String()
}

// send the log to a buffer for the rest of the test
func captureLog(t *testing.T) *syncBuffer {
	sb := &syncBuffer{}
	prev := log.Writer()
	log.SetOutput(sb)
	t.Cleanup(func() {
		log.SetOutput(prev)
	})
	return sb
}

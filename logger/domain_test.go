package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomain_Levels(t *testing.T) {
	svc, buf := newConsoleService(t)
	for i := 0; i < 4; i++ {
		svc.IncreaseVerbosity()
	}
	d := svc.Domain("git")
	assert.Equal(t, "git", d.Name())

	d.Error("e")
	d.Critical("c")
	d.Warning("w")
	d.Message("m")
	d.Info("i")
	d.Debug("d")
	d.Trace("t")
	d.Errorf("%s!", "e")
	d.Criticalf("%s!", "c")
	d.Warningf("%s!", "w")
	d.Messagef("%s!", "m")
	d.Infof("%s!", "i")
	d.Debugf("%s!", "d")
	d.Tracef("%s!", "t")
	d.Log(InfoLevel, "log")
	d.Logf(DebugLevel, "logf %d", 1)

	got := lines(buf.String())
	require.Len(t, got, 16)

	want := []string{"ERROR", "CRITICAL", "WARNING", "MESSAGE", "INFO", "DEBUG", "TRACE"}
	for i, level := range want {
		assert.Contains(t, got[i], " git[")
		assert.Contains(t, got[i], " "+level+": ")
		assert.Contains(t, got[i+len(want)], " "+level+": ")
		assert.True(t, strings.HasSuffix(got[i+len(want)], "!"))
	}
	assert.True(t, strings.HasSuffix(got[14], "INFO: log"))
	assert.True(t, strings.HasSuffix(got[15], "DEBUG: logf 1"))
}

func TestDomain_Enabled(t *testing.T) {
	svc, _ := newConsoleService(t)
	d := svc.Domain("lsp")

	assert.True(t, d.Enabled(WarningLevel))
	assert.False(t, d.Enabled(InfoLevel))
	svc.IncreaseVerbosity()
	svc.IncreaseVerbosity()
	assert.True(t, d.Enabled(InfoLevel))
}

func tracedHelper(d *Domain) {
	defer d.Enter()()
	d.Debug("inside")
}

func TestDomain_Enter(t *testing.T) {
	svc, buf := newConsoleService(t)
	d := svc.Domain("search")

	tracedHelper(d)
	assert.Empty(t, buf.String(), "tracing is off below verbosity 4")

	for i := 0; i < 4; i++ {
		svc.IncreaseVerbosity()
	}
	tracedHelper(d)

	got := lines(buf.String())
	require.Len(t, got, 3)
	assert.Regexp(t, `TRACE: ENTRY: tracedHelper\(\):\d+$`, got[0])
	assert.True(t, strings.HasSuffix(got[1], "DEBUG: inside"))
	assert.True(t, strings.HasSuffix(got[2], "TRACE: EXIT: tracedHelper()"))
}

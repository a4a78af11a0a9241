package logger

import (
	"context"
	"io"

	"user_center/biz/util/reqid"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Init routes hlog through a logrus backend with rotated file output. Must
// run after config.Init.
func Init() {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	hlog.SetLogger(&logrusLogger{l: l})
	hlog.SetOutput(newOutput())
	hlog.SetLevel(newLevel())
}

// logrusLogger adapts a logrus.Logger to hlog.FullLogger. The Ctx variants
// attach the request id carried in the context.
type logrusLogger struct {
	l *logrus.Logger
}

func (a *logrusLogger) entry(ctx context.Context) *logrus.Entry {
	if id := reqid.FromContext(ctx); id != "" {
		return a.l.WithField("request_id", id)
	}
	return logrus.NewEntry(a.l)
}

func (a *logrusLogger) Trace(v ...any)  { a.l.Trace(v...) }
func (a *logrusLogger) Debug(v ...any)  { a.l.Debug(v...) }
func (a *logrusLogger) Info(v ...any)   { a.l.Info(v...) }
func (a *logrusLogger) Notice(v ...any) { a.l.Warn(v...) }
func (a *logrusLogger) Warn(v ...any)   { a.l.Warn(v...) }
func (a *logrusLogger) Error(v ...any)  { a.l.Error(v...) }
func (a *logrusLogger) Fatal(v ...any)  { a.l.Fatal(v...) }

func (a *logrusLogger) Tracef(format string, v ...any)  { a.l.Tracef(format, v...) }
func (a *logrusLogger) Debugf(format string, v ...any)  { a.l.Debugf(format, v...) }
func (a *logrusLogger) Infof(format string, v ...any)   { a.l.Infof(format, v...) }
func (a *logrusLogger) Noticef(format string, v ...any) { a.l.Warnf(format, v...) }
func (a *logrusLogger) Warnf(format string, v ...any)   { a.l.Warnf(format, v...) }
func (a *logrusLogger) Errorf(format string, v ...any)  { a.l.Errorf(format, v...) }
func (a *logrusLogger) Fatalf(format string, v ...any)  { a.l.Fatalf(format, v...) }

func (a *logrusLogger) CtxTracef(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Tracef(format, v...)
}

func (a *logrusLogger) CtxDebugf(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Debugf(format, v...)
}

func (a *logrusLogger) CtxInfof(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Infof(format, v...)
}

func (a *logrusLogger) CtxNoticef(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Warnf(format, v...)
}

func (a *logrusLogger) CtxWarnf(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Warnf(format, v...)
}

func (a *logrusLogger) CtxErrorf(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Errorf(format, v...)
}

func (a *logrusLogger) CtxFatalf(ctx context.Context, format string, v ...any) {
	a.entry(ctx).Fatalf(format, v...)
}

func (a *logrusLogger) SetLevel(lv hlog.Level) {
	a.l.SetLevel(toLogrusLevel(lv))
}

func (a *logrusLogger) SetOutput(w io.Writer) {
	a.l.SetOutput(w)
}

func toLogrusLevel(lv hlog.Level) logrus.Level {
	switch lv {
	case hlog.LevelTrace:
		return logrus.TraceLevel
	case hlog.LevelDebug:
		return logrus.DebugLevel
	case hlog.LevelInfo:
		return logrus.InfoLevel
	case hlog.LevelNotice, hlog.LevelWarn:
		return logrus.WarnLevel
	case hlog.LevelError:
		return logrus.ErrorLevel
	case hlog.LevelFatal:
		return logrus.FatalLevel
	}
	return logrus.TraceLevel
}

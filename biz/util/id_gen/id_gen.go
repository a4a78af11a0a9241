package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"user_center/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

func init() {
	idgen = NewIDGenerator(10)
}

// NewID returns a process-unique request id from the shared generator.
func NewID() string {
	return idgen.NewID()
}

var idgen *IDGenerator

// IDGenerator keeps a small buffer of pre-built ids so the hot path is a
// channel receive.
type IDGenerator struct {
	pool <-chan string
	stop chan struct{}
}

func NewIDGenerator(maxSize int) *IDGenerator {
	stop := make(chan struct{})
	return &IDGenerator{
		pool: newPool(maxSize, stop),
		stop: stop,
	}
}

func (g *IDGenerator) Stop() {
	select {
	case <-g.stop:
	default:
		close(g.stop)
	}
}

func (g *IDGenerator) NewID() string {
	return <-g.pool
}

func newPool(size int, stop chan struct{}) <-chan string {
	pool := make(chan string, size)

	go func() {
		pid := strconv.FormatUint(uint64(os.Getpid()), 10)
		host := ip.IPv4Hex()
		for {
			select {
			case <-stop:
				return
			default:
				sb := strings.Builder{}
				sb.WriteString(strconv.FormatUint(uint64(time.Now().UnixMilli()), 36))
				sb.WriteString(host)
				sb.WriteString(pid)
				sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))

				pool <- sb.String()
			}
		}
	}()

	return pool
}

package disk

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type fakeQuerier struct {
	size  uint64
	err   error
	calls atomic.Int32
	fds   chan uintptr
}

func (q *fakeQuerier) QueryLogicalBlockSize(fd uintptr) (uint64, error) {
	q.calls.Add(1)
	if q.fds != nil {
		q.fds <- fd
	}
	return q.size, q.err
}

func (q *fakeQuerier) Name() string {
	return "FAKEGETSIZE"
}

type fakeDevice struct {
	fd       uintptr
	closeErr error
	closed   atomic.Int32
}

func (d *fakeDevice) Fd() uintptr {
	return d.fd
}

func (d *fakeDevice) Close() error {
	d.closed.Add(1)
	return d.closeErr
}

// newFakeProber returns a prober whose opener hands out dev for any path.
func newFakeProber(q *fakeQuerier, dev *fakeDevice) *Prober {
	return NewProber(nil, q).WithOpener(func(string) (Device, error) {
		return dev, nil
	})
}

func TestProbeCanonicalSizes(t *testing.T) {
	g := NewWithT(t)

	tests := []struct {
		raw  uint64
		want LogicalBlockSize
		kind BlockSizeKind
	}{
		{512, LB512, Lb512},
		{4096, LB4096, Lb4096},
		{8192, LogicalBlockSize{size: 8192}, LbOther},
	}

	for _, tt := range tests {
		q := &fakeQuerier{size: tt.raw}
		dev := &fakeDevice{fd: 42}

		lb, err := newFakeProber(q, dev).Probe("/dev/sdz")
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(lb).To(Equal(tt.want))
		g.Expect(lb.Kind()).To(Equal(tt.kind))
		g.Expect(lb.Uint64()).To(Equal(tt.raw))
		g.Expect(q.calls.Load()).To(Equal(int32(1)))
		g.Expect(dev.closed.Load()).To(Equal(int32(1)))
	}
}

func TestProbePassesDeviceFd(t *testing.T) {
	g := NewWithT(t)

	q := &fakeQuerier{size: 512, fds: make(chan uintptr, 1)}
	_, err := newFakeProber(q, &fakeDevice{fd: 1234}).Probe("/dev/sdz")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(<-q.fds).To(Equal(uintptr(1234)))
}

func TestProbeQueryFailureClosesDevice(t *testing.T) {
	g := NewWithT(t)

	q := &fakeQuerier{err: syscall.ENOTTY}
	dev := &fakeDevice{fd: 3}

	lb, err := newFakeProber(q, dev).Probe("/dev/sdz")
	g.Expect(err).To(HaveOccurred())
	g.Expect(lb.IsZero()).To(BeTrue())
	g.Expect(dev.closed.Load()).To(Equal(int32(1)))

	var ioErr *IOError
	g.Expect(errors.As(err, &ioErr)).To(BeTrue())
	g.Expect(ioErr.Op).To(Equal("ioctl FAKEGETSIZE"))
	g.Expect(ioErr.Path).To(Equal(filepath.Clean("/dev/sdz")))
	g.Expect(err).To(MatchError(syscall.ENOTTY))
	g.Expect(errors.Is(err, ErrInvalidInput)).To(BeFalse())
}

func TestProbeZeroSizeIsInvalidInput(t *testing.T) {
	g := NewWithT(t)

	dev := &fakeDevice{fd: 3}

	lb, err := newFakeProber(&fakeQuerier{size: 0}, dev).Probe("/dev/sdz")
	g.Expect(err).To(MatchError(ErrInvalidInput))
	g.Expect(lb.IsZero()).To(BeTrue())
	g.Expect(dev.closed.Load()).To(Equal(int32(1)))

	var rangeErr *InvalidBlockSizeError
	g.Expect(errors.As(err, &rangeErr)).To(BeTrue())
	g.Expect(rangeErr.Size).To(BeZero())
}

func TestProbeOversizedIsInvalidInput(t *testing.T) {
	g := NewWithT(t)

	_, err := newFakeProber(&fakeQuerier{size: MaxSectorSize + 1}, &fakeDevice{}).Probe("/dev/sdz")
	g.Expect(err).To(MatchError(ErrInvalidInput))
	g.Expect(err.Error()).To(ContainSubstring("4294967297"))
}

func TestProbeUnsupportedPlatform(t *testing.T) {
	g := NewWithT(t)

	dev := &fakeDevice{}

	_, err := newFakeProber(&fakeQuerier{err: ErrUnsupportedPlatform}, dev).Probe("/dev/sdz")
	g.Expect(err).To(MatchError(ErrUnsupportedPlatform))
	g.Expect(dev.closed.Load()).To(Equal(int32(1)))

	var ioErr *IOError
	g.Expect(errors.As(err, &ioErr)).To(BeFalse())
}

func TestProbeCloseFailure(t *testing.T) {
	g := NewWithT(t)

	dev := &fakeDevice{closeErr: syscall.EIO}

	lb, err := newFakeProber(&fakeQuerier{size: 4096}, dev).Probe("/dev/sdz")
	g.Expect(lb.IsZero()).To(BeTrue())

	var ioErr *IOError
	g.Expect(errors.As(err, &ioErr)).To(BeTrue())
	g.Expect(ioErr.Op).To(Equal("close"))
	g.Expect(err).To(MatchError(syscall.EIO))
}

func TestProbeCloseFailureAfterQueryFailure(t *testing.T) {
	g := NewWithT(t)

	dev := &fakeDevice{closeErr: syscall.EIO}

	_, err := newFakeProber(&fakeQuerier{err: syscall.ENOTTY}, dev).Probe("/dev/sdz")
	g.Expect(multierr.Errors(err)).To(HaveLen(2))
	g.Expect(err).To(MatchError(syscall.ENOTTY))
	g.Expect(err).To(MatchError(syscall.EIO))
}

func TestProbeOpenFailure(t *testing.T) {
	g := NewWithT(t)

	q := &fakeQuerier{size: 512}
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := NewProber(nil, q).Probe(missing)
	g.Expect(err).To(MatchError(fs.ErrNotExist))
	g.Expect(q.calls.Load()).To(BeZero())

	var ioErr *IOError
	g.Expect(errors.As(err, &ioErr)).To(BeTrue())
	g.Expect(ioErr.Op).To(Equal("open"))
	g.Expect(ioErr.Path).To(Equal(missing))

	var pathErr *fs.PathError
	g.Expect(errors.As(err, &pathErr)).To(BeFalse())
}

func TestProbeOpensRealFile(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "disk.img")
	g.Expect(os.WriteFile(path, make([]byte, 4096), 0600)).To(Succeed())

	q := &fakeQuerier{size: 4096, fds: make(chan uintptr, 1)}

	lb, err := NewProber(nil, q).Probe(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(lb).To(Equal(LB4096))
	g.Expect(<-q.fds).NotTo(BeZero())
}

func TestProbeCleansPath(t *testing.T) {
	g := NewWithT(t)

	var opened string
	p := NewProber(nil, &fakeQuerier{size: 512}).WithOpener(func(path string) (Device, error) {
		opened = path
		return &fakeDevice{}, nil
	})

	_, err := p.Probe("/dev//sdz/../sdy")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(opened).To(Equal(filepath.FromSlash("/dev/sdy")))
}

func TestProbeConcurrent(t *testing.T) {
	g := NewWithT(t)

	q := &fakeQuerier{size: 4096}

	var opened, closed atomic.Int32
	p := NewProber(nil, q).WithOpener(func(string) (Device, error) {
		opened.Add(1)
		return &countingDevice{closed: &closed}, nil
	})

	const n = 32

	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			lb, err := p.Probe("/dev/sdz")
			if err == nil && lb != LB4096 {
				err = errors.Errorf("unexpected size %v", lb)
			}
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		g.Expect(err).NotTo(HaveOccurred())
	}

	g.Expect(opened.Load()).To(Equal(int32(n)))
	g.Expect(closed.Load()).To(Equal(int32(n)))
	g.Expect(q.calls.Load()).To(Equal(int32(n)))
}

type countingDevice struct {
	closed *atomic.Int32
}

func (d *countingDevice) Fd() uintptr {
	return 7
}

func (d *countingDevice) Close() error {
	d.closed.Add(1)
	return nil
}

func TestProbeEmptyPath(t *testing.T) {
	g := NewWithT(t)

	q := &fakeQuerier{size: 512}
	var opened atomic.Int32
	p := NewProber(nil, q).WithOpener(func(string) (Device, error) {
		opened.Add(1)
		return &fakeDevice{fd: 3}, nil
	})

	lb, err := p.Probe("")
	g.Expect(err).To(MatchError(ErrInvalidInput))
	g.Expect(lb.IsZero()).To(BeTrue())
	g.Expect(opened.Load()).To(BeZero())
	g.Expect(q.calls.Load()).To(BeZero())

	var ioErr *IOError
	g.Expect(errors.As(err, &ioErr)).To(BeFalse())
}

func TestProberWithLogger(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	base := newFakeProber(&fakeQuerier{size: 4096}, &fakeDevice{fd: 3})
	logged := base.WithLogger(logger)

	g.Expect(logged).NotTo(BeIdenticalTo(base))
	g.Expect(base.logger).NotTo(BeIdenticalTo(logger))

	lb, err := logged.Probe("/dev/sdz")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(lb).To(Equal(LB4096))
	g.Expect(buf.String()).To(ContainSubstring("Probed logical block size"))
	g.Expect(buf.String()).To(ContainSubstring("query=FAKEGETSIZE"))
	g.Expect(buf.String()).To(ContainSubstring("size=4096"))

	buf.Reset()
	_, err = base.Probe("/dev/sdz")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(buf.Len()).To(BeZero())

	g.Expect(base.WithLogger(nil).logger).NotTo(BeNil())
}

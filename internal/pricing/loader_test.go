package pricing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// fasthttp's client keeps pool janitors alive for the life of the process
		goleak.IgnoreTopFunction("github.com/valyala/fasthttp.(*HostClient).connsCleaner"),
		goleak.IgnoreTopFunction("github.com/valyala/fasthttp.(*TCPDialer).tcpAddrsClean"),
	)
}

const sampleDoc = `{
  "currency": "USD",
  "pricingOptions": [
    {"id": 1, "planName": "Basic", "price": 100, "discount": 10, "taxPercent": 5},
    {"id": "2", "planName": "Gold", "price": 200, "totalPrice": 75}
  ]
}`

type stubSource struct {
	status  int
	body    string
	err     error
	release chan struct{}
}

func (s *stubSource) Fetch(ctx context.Context) (int, []byte, error) {
	if s.release != nil {
		<-s.release
	}
	return s.status, []byte(s.body), s.err
}

func TestLoader_Load(t *testing.T) {
	l := NewLoader(&stubSource{status: 200, body: sampleDoc}, nil)

	doc, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USD", doc.Currency)
	require.Len(t, doc.PricingOptions, 2)
	assert.Equal(t, "Basic", doc.PricingOptions[0].PlanName)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("non-success status", func(t *testing.T) {
		_, err := NewLoader(&stubSource{status: 404}, nil).Load(context.Background())
		var fe *FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, 404, fe.Status)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("transport failure", func(t *testing.T) {
		boom := errors.New("connection refused")
		_, err := NewLoader(&stubSource{err: boom}, nil).Load(context.Background())
		var fe *FetchError
		require.ErrorAs(t, err, &fe)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("html body", func(t *testing.T) {
		_, err := NewLoader(&stubSource{status: 200, body: "  <html><body>404</body></html>"}, nil).Load(context.Background())
		var wc *WrongContentError
		require.ErrorAs(t, err, &wc)
		var pe *ParseError
		assert.False(t, errors.As(err, &pe))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := NewLoader(&stubSource{status: 200, body: `{"currency": "USD",`}, nil).Load(context.Background())
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
	})
}

func TestLoader_DiscardsResultAfterCancel(t *testing.T) {
	src := &stubSource{status: 200, body: sampleDoc, release: make(chan struct{})}
	l := NewLoader(src, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc, err := l.Load(ctx)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, context.Canceled)

	// let the pending read finish so the goroutine exits
	close(src.release)
}

func TestFindPlan(t *testing.T) {
	doc, err := Decode([]byte(sampleDoc))
	require.NoError(t, err)

	p, err := FindPlan(doc, "1")
	require.NoError(t, err)
	assert.Equal(t, "Basic", p.PlanName)

	_, err = FindPlan(doc, "999")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "999", nf.ID)

	_, err = FindPlan(nil, "1")
	assert.ErrorAs(t, err, &nf)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	src := FileSource{Dir: dir}

	status, _, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 404, status)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "PricingData.json"), []byte(sampleDoc), 0o644))
	status, body, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, status)
	assert.JSONEq(t, sampleDoc, string(body))
}

package upload

import (
	"context"
	"io"
)

// progressReader reports the read fraction each time a chunk boundary is
// crossed and stops with ctx.Err() once the context is done. The final 1.0
// is left to the caller, after storage confirms the write.
type progressReader struct {
	ctx      context.Context
	r        io.Reader
	total    int64
	chunk    int64
	read     int64
	next     int64
	progress ProgressFunc
}

func newProgressReader(ctx context.Context, r io.Reader, total, chunk int64, progress ProgressFunc) *progressReader {
	return &progressReader{
		ctx:      ctx,
		r:        r,
		total:    total,
		chunk:    chunk,
		next:     chunk,
		progress: progress,
	}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	if err := p.ctx.Err(); err != nil {
		return 0, err
	}

	n, err := p.r.Read(buf)
	p.read += int64(n)

	for p.read >= p.next && p.next < p.total {
		p.progress(float64(p.next) / float64(p.total))
		p.next += p.chunk
		if ctxErr := p.ctx.Err(); ctxErr != nil {
			return n, ctxErr
		}
	}

	return n, err
}

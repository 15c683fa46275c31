// zkdil-bench times key generation, signing and verification, compares the
// scheme's NTT multiplier with lattigo's on the same modulus, and writes a
// JSON summary plus an HTML chart of the timings.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	lring "github.com/tuneinsight/lattigo/v4/ring"

	"github.com/madars/zkdilithium-signer/ring"
	"github.com/madars/zkdilithium-signer/zkdilithium"
)

type summary struct {
	Runs         int     `json:"runs"`
	GenMs        stats   `json:"gen_ms"`
	SignMs       stats   `json:"sign_ms"`
	VerifyMs     stats   `json:"verify_ms"`
	MulUs        float64 `json:"ntt_mul_us"`
	LattigoMulUs float64 `json:"lattigo_mul_us"`
}

type stats struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

func computeStats(xs []float64) stats {
	if len(xs) == 0 {
		return stats{}
	}
	s := stats{Min: xs[0], Max: xs[0]}
	var sum float64
	for _, v := range xs {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(xs))
	return s
}

func timeScheme(runs int) (gen, sign, verify []float64, err error) {
	seed := make([]byte, zkdilithium.SeedSize)
	for i := 0; i < runs; i++ {
		seed[0] = byte(i)
		seed[1] = byte(i >> 8)

		t0 := time.Now()
		pk, sk := zkdilithium.Gen(seed)
		gen = append(gen, float64(time.Since(t0).Microseconds())/1000)

		msg := []byte(fmt.Sprintf("bench-%d", i))
		t0 = time.Now()
		sig, serr := zkdilithium.Sign(sk, msg)
		if serr != nil {
			return nil, nil, nil, serr
		}
		sign = append(sign, float64(time.Since(t0).Microseconds())/1000)

		t0 = time.Now()
		ok := zkdilithium.Verify(pk, msg, sig)
		verify = append(verify, float64(time.Since(t0).Microseconds())/1000)
		if !ok {
			return nil, nil, nil, fmt.Errorf("run %d: signature rejected", i)
		}
	}
	return gen, sign, verify, nil
}

func timeMul(iters int) float64 {
	rnd := rand.New(rand.NewSource(1))
	var a, b ring.Poly
	for i := range a {
		a[i] = uint32(rnd.Int63n(ring.Q))
		b[i] = uint32(rnd.Int63n(ring.Q))
	}
	t0 := time.Now()
	for i := 0; i < iters; i++ {
		_ = ring.MulNTT(a.NTT(), b.NTT()).InvNTT()
	}
	return float64(time.Since(t0).Microseconds()) / float64(iters)
}

func timeLattigoMul(iters int) (float64, error) {
	r, err := lring.NewRing(ring.N, []uint64{ring.Q})
	if err != nil {
		return 0, err
	}
	rnd := rand.New(rand.NewSource(1))
	a, b, c := r.NewPoly(), r.NewPoly(), r.NewPoly()
	for i := 0; i < ring.N; i++ {
		a.Coeffs[0][i] = uint64(rnd.Int63n(ring.Q))
		b.Coeffs[0][i] = uint64(rnd.Int63n(ring.Q))
	}
	t0 := time.Now()
	for i := 0; i < iters; i++ {
		r.MForm(a, c)
		r.NTT(c, c)
		r.MulCoeffsMontgomery(c, b, c)
		r.InvNTT(c, c)
		r.InvMForm(c, c)
	}
	return float64(time.Since(t0).Microseconds()) / float64(iters), nil
}

func newTimingChart(title string, gen, sign, verify []float64) *charts.Bar {
	n := len(gen)
	labels := make([]string, n)
	mk := func(xs []float64) []opts.BarData {
		items := make([]opts.BarData, len(xs))
		for i, v := range xs {
			items[i] = opts.BarData{Value: v}
		}
		return items
	}
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i)
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "milliseconds per operation"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("gen", mk(gen)).
		AddSeries("sign", mk(sign)).
		AddSeries("verify", mk(verify))
	return bar
}

func main() {
	runs := flag.Int("runs", 20, "number of keygen/sign/verify runs")
	mulIters := flag.Int("mul-iters", 2000, "iterations for the multiplier comparison")
	outDir := flag.String("out", "bench-reports", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	gen, sign, verify, err := timeScheme(*runs)
	if err != nil {
		log.Fatalf("scheme timing: %v", err)
	}
	mulUs := timeMul(*mulIters)
	lattigoUs, err := timeLattigoMul(*mulIters)
	if err != nil {
		log.Fatalf("lattigo timing: %v", err)
	}

	sum := summary{
		Runs:         *runs,
		GenMs:        computeStats(gen),
		SignMs:       computeStats(sign),
		VerifyMs:     computeStats(verify),
		MulUs:        mulUs,
		LattigoMulUs: lattigoUs,
	}
	b, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	jsonPath := filepath.Join(*outDir, "summary.json")
	if err := os.WriteFile(jsonPath, b, 0o644); err != nil {
		log.Fatalf("write json: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(newTimingChart("zkDilithium operations", gen, sign, verify))
	htmlPath := filepath.Join(*outDir, "timings.html")
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}

	fmt.Printf("gen %.2fms sign %.2fms verify %.2fms (mean over %d runs)\n",
		sum.GenMs.Mean, sum.SignMs.Mean, sum.VerifyMs.Mean, *runs)
	fmt.Printf("ring mul %.2fus, lattigo mul %.2fus\n", mulUs, lattigoUs)
	fmt.Println("reports in", *outDir)
}

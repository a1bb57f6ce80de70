package htmlreport

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// echartsAssetURL hosts the chart runtime that gets bundled into reports.
const echartsAssetURL = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

const runtimeFetchTimeout = 15 * time.Second

// fetchChartRuntime retrieves the chart runtime script for inlining, so the
// written document renders its charts without any network access. Package
// variable so tests can substitute a canned script.
var fetchChartRuntime = downloadChartRuntime

func downloadChartRuntime() ([]byte, error) {
	client := &http.Client{Timeout: runtimeFetchTimeout}
	resp, err := client.Get(echartsAssetURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s fetching chart runtime", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

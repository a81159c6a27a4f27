package main

import (
	"fmt"
	"io"
	"sync"

	larcv "github.com/dune-exp/larcv_go/pkg"
)

type WorkerData struct {
	Seq    int
	Data   []byte
	Header larcv.EventHeaderStruct
}

type WorkerResult struct {
	Seq    int
	Header larcv.EventHeaderStruct
	Record *larcv.EventRecord
	Err    error
}

func worker(id int, jobs <-chan WorkerData, results chan<- WorkerResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		if VerbosityLevel > 1 {
			message := fmt.Sprintf("Worker %d processing event %d", id, job.Header.EventId)
			logger.Info(message, "workers")
		}
		record, err := processEvent(job.Data, job.Header)
		results <- WorkerResult{Seq: job.Seq, Header: job.Header, Record: record, Err: err}
	}
}

func sendEventsToWorkers(fileReader *FileReader, jobs chan<- WorkerData) {
	seq := 0
	for {
		header, eventData, err := fileReader.getNextEvent()
		if err != nil {
			if err != io.EOF {
				message := fmt.Errorf("error reading event: %w", err)
				logger.Error(message.Error())
			}
			break
		}
		jobs <- WorkerData{Seq: seq, Data: eventData, Header: header}
		seq++
	}
	close(jobs)
}

func runParallel(fileReader *FileReader, writer *larcv.Writer) (int, int, error) {
	jobs := make(chan WorkerData, 100)
	results := make(chan WorkerResult, 100)

	var wg sync.WaitGroup
	for w := 1; w <= configuration.NumWorkers; w++ {
		wg.Add(1)
		go worker(w, jobs, results, &wg)
	}
	go sendEventsToWorkers(fileReader, jobs)
	go func() {
		wg.Wait()
		close(results)
	}()

	return processWorkerResults(results, writer)
}

// processWorkerResults flushes records in sequence order, holding finished
// events until their predecessors arrive, so the parallel output file is
// identical to the sequential one.
func processWorkerResults(results <-chan WorkerResult, writer *larcv.Writer) (int, int, error) {
	written := 0
	skipped := 0
	pending := make(map[int]WorkerResult)
	next := 0
	for result := range results {
		pending[result.Seq] = result
		for {
			current, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			if current.Err != nil {
				if !keepGoing(current.Header, current.Err) {
					return written, skipped, current.Err
				}
				skipped++
				continue
			}
			if current.Record == nil {
				skipped++
				continue
			}
			larcv.ProcessRecord(current.Record, configuration, writer)
			written++
		}
	}
	return written, skipped, nil
}

// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ImportJob struct {
	JobID          uuid.UUID `json:"job_id"`
	Cities         []string  `json:"cities"`
	Categories     []string  `json:"categories"`
	MaxPerCategory int       `json:"max_per_category,omitempty"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	cities := flag.String("cities", "New York", "Comma-separated city names")
	categories := flag.String("categories", "preschools", "Comma-separated category keys")
	maxPerCategory := flag.Int("max", 10, "Maximum venues per category")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	job := ImportJob{
		JobID:          uuid.New(),
		Cities:         strings.Split(*cities, ","),
		Categories:     strings.Split(*categories, ","),
		MaxPerCategory: *maxPerCategory,
	}

	data, err := json.Marshal(job)
	if err != nil {
		log.Fatalf("Failed to marshal job: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:import:jobs",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish job: %v", err)
	}

	fmt.Printf("Job published successfully!\n")
	fmt.Printf("   Stream: stream:import:jobs\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Job ID: %s\n", job.JobID)
	fmt.Printf("   Cities: %v\n", job.Cities)
	fmt.Printf("   Categories: %v\n", job.Categories)

	fmt.Printf("\nWaiting for result in stream:import:done...\n")

	timeout := time.After(5 * time.Minute)
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for result")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:import:done", "0"},
				Count:   10,
				Block:   0,
			}).Result()

			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var response map[string]interface{}
					if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
						continue
					}

					if jobID, ok := response["job_id"].(string); ok {
						if jobID == job.JobID.String() {
							fmt.Printf("\nResult received!\n")
							prettyJSON, _ := json.MarshalIndent(response, "", "  ")
							fmt.Printf("%s\n", prettyJSON)
							return
						}
					}
				}
			}
		}
	}
}

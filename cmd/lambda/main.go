package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/vinquiz/internal/config"
	"github.com/saulo-duarte/vinquiz/internal/container"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("building container: %v", err)
	}

	adapter := httpadapter.New(c.Router)
	lambda.Start(adapter.ProxyWithContext)
}

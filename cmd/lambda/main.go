package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	lambdaruntime "github.com/de-tools/instance-isolator/pkg/runtime/lambda"
	"github.com/de-tools/instance-isolator/pkg/services/responder"
)

func main() {
	r, err := responder.New(context.Background(), os.Getenv("ISOLATOR_CONFIG"), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lambda.Start(lambdaruntime.NewHandler(r).Invoke)
}

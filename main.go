package main

import "github.com/originbyte/ob-sdk-go/cmd/obsdk"

func main() {
	obsdk.Execute()
}

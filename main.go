// Package main はアプリケーションのエントリーポイントを提供します。
package main

import "github.com/stsysd/tabi/cli"

func main() {
	cli.Execute()
}

// Command nev-ttl loads decoded Neuralynx event exports and derives
// per-channel digital pulse timing from the TTL event stream.
package main

func main() {
	Execute()
}

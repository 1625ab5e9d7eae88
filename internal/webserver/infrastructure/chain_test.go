package infrastructure

import "testing"

func TestChainTriesTheNextProviderOnFailure(t *testing.T) {
	first := &SenderMock{}
	second := &SenderMock{}
	first.FailNext(true)
	first.Wg.Add(1)
	second.Wg.Add(1)

	chain := NewChain(first, second)
	if err := chain.Send("from@example.com", "to@example.com", "subject", "body"); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	if first.CalledSend() {
		t.Error("Expected the failing provider to not deliver anything")
	}
	if !second.CalledSend() {
		t.Error("Expected the second provider to deliver the message")
	}
	if second.LastTo() != "to@example.com" {
		t.Errorf("Expected the message to keep its recipient, got %s", second.LastTo())
	}
}

func TestChainFailsWhenAllProvidersFail(t *testing.T) {
	first := &SenderMock{}
	second := &SenderMock{}
	first.FailNext(true)
	second.FailNext(true)
	first.Wg.Add(1)
	second.Wg.Add(1)

	chain := NewChain(first, second)
	if err := chain.Send("from@example.com", "to@example.com", "subject", "body"); err == nil {
		t.Error("Expected an error when no provider can deliver")
	}
}

func TestChainFromComesFromTheFirstProvider(t *testing.T) {
	first := &SenderMock{}
	second := &SenderMock{}

	chain := NewChain(first, second)
	if chain.From() != first.From() {
		t.Errorf("Expected the chain to borrow the first provider's address, got %s", chain.From())
	}
}

func TestEmptyChainCannotSend(t *testing.T) {
	chain := NewChain()
	if err := chain.Send("from@example.com", "to@example.com", "subject", "body"); err == nil {
		t.Error("Expected an error from a chain with no providers")
	}
}

package keys

import (
	"github.com/Tora-Build/w3cash-sdk-sub001/auth"
	"github.com/Tora-Build/w3cash-sdk-sub001/codec"
	"github.com/Tora-Build/w3cash-sdk-sub001/model"
)

// SignWorkflow signs an encoded instruction's payload with a stored key
// and returns the submission-ready signed payload bytes.
//
// The header inside the instruction is left exactly as the caller built
// it; only the payload bytes are covered by the signature.
func (ks *KeyStore) SignWorkflow(identifier, role string, instruction []byte) ([]byte, model.Address, error) {
	instr, err := codec.DecodeInstruction(instruction)
	if err != nil {
		return nil, model.ZeroAddress, err
	}
	priv, err := ks.PrivateKey(identifier, role)
	if err != nil {
		return nil, model.ZeroAddress, err
	}
	sig, initiator, err := auth.SignEd25519(instr.Payload, priv)
	if err != nil {
		return nil, model.ZeroAddress, err
	}
	signed := codec.EncodeSignedPayload(model.SignedPayload{
		Instruction: instruction,
		Initiator:   initiator,
		Signature:   sig,
	})
	return signed, initiator, nil
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package slice

import (
	"github.com/Fantom-foundation/trieslice/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// fixtureJson is the expected document of the snapshot built by
// fixtureSnapshot. Node payloads are abbreviated and thus not valid trie
// nodes; they serve encoding tests only.
const fixtureJson = `{"slice-id":"1372-10-8e9e2d4514bee72525133350201ecfc3da3815a4bb6b03ad5ff3bdd555363188","metadata":{"time-ms":{"00 trie-loading":"0.015000","01 fetch-stem-keys":"0.084504","02 fetch-slice-keys":"177.019430","03 fetch-leaves-info":"1104.785629"},"nodes-number":{"N00 stem-and-head-nodes":"5","N01 max-depth":"7","N02 total-trie-nodes":"1022","N03 leaves":"739","N04 smart-contacts":"122"}},"trie-nodes":{"stem":{"0x49a2b2245809d0557c13e70b743d77820147ad2806fa96c7ae2442b9ec075fe2":"0xf90211a0d3679ab92133318a2448a06929746b777145419b8c861a7e50356a","0x8e9e2d4514bee72525133350201ecfc3da3815a4bb6b03ad5ff3bdd555363188":"0xf90211a0ddcc9851a7e66913088afa21a5a6246438616d0d32ff4a5a39542b","0xb40284394e2e20fde4426b1a31efdff3155ba0a30bc4b5767f82ac28c5fcb61d":"0xf90211a06cefd44c061cc5347291252df405c98dbf17d3b7c9af92521b9d0c"},"head":{"0x7c265eff0de2be90d104198753ebe3591538eaea49bb3ca2005d2de212593dd4":"0xf90211a0aec14f94a5b41e071d79bc9d8e652bf6e62f43087e7ceb63e5e29d"},"slice":{"0x00320959ed3f2b59e417bc0ee4dd6849dd84e88de42183fd9b73793e2c8dcebb":"0xf87180a0a6d162c2da0594b9f08fceabf5f42501a6a12f59e96c1e38332b1a","0x003abd40edace0a07b110cc5920700f9c7a32c5f1c418d89e52e99ef49f4a721":"0xf851808080a02367d13dca8c2cd674625b7fa7566e508539eac966ea31d5ae","0x003de42b4903bc596bb9d496520ddb8391c5ede58c6387517107debcdcadf9aa":"0xf86c9d3a04863fdd15efc7d1285c4ee41272081141db7ee989039695547058"}},"leaves":{"0x13720e771220eac4201e1ee88c325f335368e2fdbc70e8fbcfca7d3f5658dac6":{"storage-root":"0x8a7e2341281de0a8844a76ae48939449b36cc23f69694f27cc988a1be34efe7c","evm-code":"0x60606040525b603c5b60006010603e565b90505936810160405236600082376020"},"0x1372159a8c7294b99cfe7c8ea80c19037f357a064c453636a234f103de73268e":{"storage-root":"0xe7b9307faaf6686a9d9220d832cd4b2bdf1bcf6a1fae4d2603a884e8f3f20713","evm-code":"0x606060405236156100885763ffffffff60e060020a60003504166302"},"0x1372162c80de9c254a7a5e934606411789257fb6f1533af414415f1638f850c3":{"storage-root":"0x88f6c90814631203ebcd879b9b2a01f894d317d77528d0a411dcdc9664a288fb","evm-code":"0x606060405263ffffffff60e060020a6000350416636ea056a9811461"}}}`

const fixtureId = "1372-10-8e9e2d4514bee72525133350201ecfc3da3815a4bb6b03ad5ff3bdd555363188"

func fixtureMetadata() Metadata {
	return NewMetadata(
		NewLabels(map[string]string{
			"00 trie-loading":      "0.015000",
			"01 fetch-stem-keys":   "0.084504",
			"02 fetch-slice-keys":  "177.019430",
			"03 fetch-leaves-info": "1104.785629",
		}),
		NewLabels(map[string]string{
			"N00 stem-and-head-nodes": "5",
			"N01 max-depth":           "7",
			"N02 total-trie-nodes":    "1022",
			"N03 leaves":              "739",
			"N04 smart-contacts":      "122",
		}),
	)
}

func fixtureSnapshot() Snapshot {
	return NewBuilder(fixtureId).
		SetMetadata(fixtureMetadata()).
		AddStemNode(hash("49a2b2245809d0557c13e70b743d77820147ad2806fa96c7ae2442b9ec075fe2"), payload("f90211a0d3679ab92133318a2448a06929746b777145419b8c861a7e50356a")).
		AddStemNode(hash("8e9e2d4514bee72525133350201ecfc3da3815a4bb6b03ad5ff3bdd555363188"), payload("f90211a0ddcc9851a7e66913088afa21a5a6246438616d0d32ff4a5a39542b")).
		AddStemNode(hash("b40284394e2e20fde4426b1a31efdff3155ba0a30bc4b5767f82ac28c5fcb61d"), payload("f90211a06cefd44c061cc5347291252df405c98dbf17d3b7c9af92521b9d0c")).
		AddHeadNode(hash("7c265eff0de2be90d104198753ebe3591538eaea49bb3ca2005d2de212593dd4"), payload("f90211a0aec14f94a5b41e071d79bc9d8e652bf6e62f43087e7ceb63e5e29d")).
		AddSliceNode(hash("00320959ed3f2b59e417bc0ee4dd6849dd84e88de42183fd9b73793e2c8dcebb"), payload("f87180a0a6d162c2da0594b9f08fceabf5f42501a6a12f59e96c1e38332b1a")).
		AddSliceNode(hash("003abd40edace0a07b110cc5920700f9c7a32c5f1c418d89e52e99ef49f4a721"), payload("f851808080a02367d13dca8c2cd674625b7fa7566e508539eac966ea31d5ae")).
		AddSliceNode(hash("003de42b4903bc596bb9d496520ddb8391c5ede58c6387517107debcdcadf9aa"), payload("f86c9d3a04863fdd15efc7d1285c4ee41272081141db7ee989039695547058")).
		AddLeaf(hash("13720e771220eac4201e1ee88c325f335368e2fdbc70e8fbcfca7d3f5658dac6"), NewContract(
			hash("8a7e2341281de0a8844a76ae48939449b36cc23f69694f27cc988a1be34efe7c"),
			payload("60606040525b603c5b60006010603e565b90505936810160405236600082376020"),
		)).
		AddLeaf(hash("1372159a8c7294b99cfe7c8ea80c19037f357a064c453636a234f103de73268e"), NewContract(
			hash("e7b9307faaf6686a9d9220d832cd4b2bdf1bcf6a1fae4d2603a884e8f3f20713"),
			payload("606060405236156100885763ffffffff60e060020a60003504166302"),
		)).
		AddLeaf(hash("1372162c80de9c254a7a5e934606411789257fb6f1533af414415f1638f850c3"), NewContract(
			hash("88f6c90814631203ebcd879b9b2a01f894d317d77528d0a411dcdc9664a288fb"),
			payload("606060405263ffffffff60e060020a6000350416636ea056a9811461"),
		)).
		Build()
}

func hash(str string) common.Hash {
	return common.HashFromString(str)
}

func payload(str string) []byte {
	return hexutil.MustDecode("0x" + str)
}

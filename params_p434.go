package sike

import (
	"github.com/holiman/uint256"
)

// P434 is SIKEp434 with compressed public keys, the default parameter set.
var P434 = MustParams(newP434(true, &p434BasisCompressed))

// P434Uncompressed is SIKEp434 with the round 2 torsion bases and full
// size public keys.
var P434Uncompressed = MustParams(newP434(false, &p434BasisRound2))

// p434Basis holds x(P), x(Q) and x(P-Q) of both torsion bases on the
// starting curve
type p434Basis struct {
	A, B [3]Fp2
}

func newP434(compressed bool, basis *p434Basis) *Params {
	name := "SIKEp434"
	if compressed {
		name = "SIKEp434_compressed"
	}
	return &Params{
		Name:       name,
		InitCurveA: 6,
		Compressed: compressed,
		MsgLen:     16,
		KeyLen:     16,
		A: DomainParams{
			Ell:           2,
			E:             216,
			Order:         uint256.Int{0, 0, 0, 0x0000000001000000},
			CofactorEll:   3,
			CofactorE:     137,
			SecretBitLen:  216,
			SecretByteLen: 27,
			LadderBits:    216,
			ScalarBytes:   27,
			Gen:           basis.A,
			Strategy:      Strategy{Ell: 2, Degree: 4, Height: 108, Steps: p434StrategyA},
			PHWindow:      4,
			PHPath:        p434PathW2x4,
		},
		B: DomainParams{
			Ell:           3,
			E:             137,
			Order:         uint256.Int{0x58AEA3FDC1767AE3, 0xC520567BC65C7831, 0x1773446CFC5FD681, 0x0000000002341F27},
			CofactorEll:   2,
			CofactorE:     216,
			SecretBitLen:  217,
			SecretByteLen: 28,
			LadderBits:    218,
			ScalarBytes:   28,
			Gen:           basis.B,
			Strategy:      Strategy{Ell: 3, Degree: 3, Height: 137, Steps: p434StrategyB},
			PHWindow:      4,
			PHPath:        p434PathW3x4,
		},
		tables: &p434Tables,
		zero:   &p434Zero,
	}
}

// p434BasisCompressed is the basis used with compressed keys. The third
// entry of A is x(P+Q) for the roots SqrtVar picks, which is x(P-Q) for
// the other sign of Q.
var p434BasisCompressed = p434Basis{
	A: [3]Fp2{
		{
			A: FieldElement{[7]uint64{
				0x6E18D3A63313A738, 0x1DCC496DD6DDE298, 0xA35F3F7DAFBE2B43, 0xC6B9A5CC670071EB,
				0x2EA3DB085283675A, 0x0FDFE173A0297F36, 0x0002200804EB824D,
			}},
			B: FieldElement{[7]uint64{
				0xB999E9E259F7BFA8, 0x2584D67D0C2EEAA9, 0x80AB07D4E9625724, 0x781DA616A7A76E54,
				0x9BE449736374F491, 0x8C6F86E8B0C4D74A, 0x0001C1D4812CBD98,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x257DBD53095FD263, 0xBBB3C7A7B4EDB1D4, 0xA817B7FDDD5BB8DA, 0xF5DE963B242B7AB3,
				0x7F51B5362FC94CB6, 0xE7D2496B526DFF16, 0x0001E962CF69118C,
			}},
			B: FieldElement{[7]uint64{
				0xED9DC89467FB039D, 0x17C71E114B5803D0, 0x816C3379BE9647BF, 0xB07F441A15434B64,
				0xCC65C1804AF4CBD1, 0xF06BF5F074032C77, 0x0001A251F94CF02C,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xA26194AB4BD1A16F, 0xCFCD9F7F04D5AB10, 0x1BB4A7C04C37482C, 0x71DEE733632DA36D,
				0x7335784B5ECF957F, 0x66AE2381533A7F09, 0x000232BFFE6FA42F,
			}},
			B: FieldElement{[7]uint64{
				0x60ACBE5D899CFA6A, 0x82AC55A556E5A22F, 0x437D8C2AC83FDC6B, 0x620A8DA602543EDE,
				0xD19ABA8092A1E8C2, 0xAFF1AA61981C95D3, 0x0001A7232B0C035E,
			}},
		},
	},
	B: [3]Fp2{
		{
			A: FieldElement{[7]uint64{
				0xE172658571249BA8, 0x9D8F52CB15829DA0, 0xE3A7C7F9F0E3F832, 0x8B825DD0B9410D30,
				0xF42F815734752EDA, 0xCB35DD9160997586, 0x00018B3AAAAD0F79,
			}},
			B: FieldElement{[7]uint64{
				0xCF0B435C40C1375D, 0x58AC8A63992B36EF, 0x416D0B3DFB0C1DF5, 0xB257E9CFE8985F15,
				0xA493D98A7A1D6DF2, 0x6D6781A5B3FDE61F, 0x000179AC0D886A3F,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xE172658571249BA8, 0x9D8F52CB15829DA0, 0xE3A7C7F9F0E3F832, 0x8B825DD0B9410D30,
				0xF42F815734752EDA, 0xCB35DD9160997586, 0x00018B3AAAAD0F79,
			}},
			B: FieldElement{[7]uint64{
				0x30F4BCA3BF3EC8A2, 0xA753759C66D4C910, 0xBE92F4C204F3E20A, 0x4B698CAAFA67A0EA,
				0xD73282EDB73B40B1, 0xFF94DE30CDC73A36, 0x0000BA73198F0904,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x9F7367022EFDF650, 0xA8C21C687A91D6BC, 0xDDB909C497C4BFED, 0x66FD362A30232EBF,
				0x84AC5026408590E1, 0x5378004CB74DA4ED, 0x00008AA46B9E55B2,
			}},
			B: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
		},
	},
}

// p434BasisRound2 is the basis of the round 2 submission
var p434BasisRound2 = p434Basis{
	A: [3]Fp2{
		{
			A: FieldElement{[7]uint64{
				0x05ADF455C5C345BF, 0x91935C5CC767AC2B, 0xAFE4E879951F0257, 0x70E792DC89FA27B1,
				0xF797F526BB48C8CD, 0x2181DB6131AF621F, 0x00000A1C08B1ECC4,
			}},
			B: FieldElement{[7]uint64{
				0x74840EB87CDA7788, 0x2971AA0ECF9F9D0B, 0xCB5732BDF41715D5, 0x8CD8E51F7AACFFAA,
				0xA7F424730D7E419F, 0xD671EB919A179E8C, 0x0000FFA26C5A924A,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xFEC6E64588B7273B, 0xD2A626D74CBBF1C6, 0xF8F58F07A78098C7, 0xE23941F470841B03,
				0x1B63EDA2045538DD, 0x735CFEB0FFD49215, 0x0001C4CB77542876,
			}},
			B: FieldElement{[7]uint64{
				0xADB0F733C17FFDD6, 0x6AFFBD037DA0A050, 0x680EC43DB144E02F, 0x1E2E5D5FF524E374,
				0xE2DDA115260E2995, 0xA6E4B552E2EDE508, 0x00018ECCDDF4B53E,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x01BA4DB518CD6C7D, 0x2CB0251FE3CC0611, 0x259B0C6949A9121B, 0x60E17AC16D2F82AD,
				0x3AA41F1CE175D92D, 0x413FBE6A9B9BC4F3, 0x00022A81D8D55643,
			}},
			B: FieldElement{[7]uint64{
				0xB8ADBC70FC82E54A, 0xEF9CDDB0D5FADDED, 0x5820C734C80096A0, 0x7799994BAA96E0E4,
				0x044961599E379AF8, 0xDB2B94FBF09F27E2, 0x0000B87FC716C0C6,
			}},
		},
	},
	B: [3]Fp2{
		{
			A: FieldElement{[7]uint64{
				0x6E5497556EDD48A3, 0x2A61B501546F1C05, 0xEB919446D049887D, 0x5864A4A69D450C4F,
				0xB883F276A6490D2B, 0x22CC287022D5F5B9, 0x0001BED4772E551F,
			}},
			B: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xFAE2A3F93D8B6B8E, 0x494871F51700FE1C, 0xEF1A94228413C27C, 0x498FF4A4AF60BD62,
				0xB00AD2A708267E8A, 0xF4328294E017837F, 0x000034080181D8AE,
			}},
			B: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x283B34FAFEFDC8E4, 0x9208F44977C3E647, 0x7DEAE962816F4E9A, 0x68A2BA8AA262EC9D,
				0x8176F112EA43F45B, 0x02106D022634F504, 0x00007E8A50F02E37,
			}},
			B: FieldElement{[7]uint64{
				0xB378B7C1DA22CCB1, 0x6D089C99AD1D9230, 0xEBE15711813E2369, 0x2B35A68239D48A53,
				0x445F6FD138407C93, 0xBEF93B29A3F6B54B, 0x000173FA910377D3,
			}},
		},
	},
}

// Optimal strategies for the isogeny walks
var (
	p434StrategyA = []uint32{
		48, 28, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2,
		1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
		1, 13, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1,
		5, 4, 2, 1, 1, 2, 1, 1, 2, 1, 1, 1, 21, 12, 7, 4,
		2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1,
		1, 1, 1, 2, 1, 1, 1, 9, 5, 3, 2, 1, 1, 1, 1, 2,
		1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1,
	}
	p434StrategyB = []uint32{
		66, 33, 17, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 4,
		2, 1, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 1, 2, 1, 1,
		4, 2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1, 1, 1, 2, 1,
		1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1,
		4, 2, 1, 1, 2, 1, 1, 32, 16, 8, 4, 3, 1, 1, 1, 1,
		2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2,
		1, 1, 4, 2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1, 1, 2,
		1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1,
		1, 4, 2, 1, 1, 2, 1, 1,
	}
)

// Pohlig-Hellman traversal paths, named by ell and window
var (
	p434PathW2x4 = []uint32{
		0, 0, 1, 2, 3, 3, 4, 4, 5, 6, 6, 7, 8, 9, 9, 9,
		10, 11, 12, 13, 13, 13, 14, 14, 15, 16, 17, 18, 19, 19, 19, 19,
		20, 21, 22, 22, 23, 24, 25, 26, 27, 27, 28, 28, 28, 28, 28, 29,
		30, 31, 32, 33, 34, 34, 35,
	}
	p434PathW3x4 = []uint32{
		0, 0, 1, 2, 3, 4, 4, 5, 5, 6, 7, 7, 8, 9, 10, 10,
		11, 12, 13, 14, 14, 14, 15, 16, 17, 18, 19, 19, 19, 19, 20, 21,
		22, 23, 24, 25,
	}
	p434PathW3x5 = []uint32{
		0, 0, 1, 2, 3, 4, 5, 5, 6, 6, 7, 8, 8, 9, 10, 11,
		11, 12, 13, 14, 15, 15, 16, 17, 18, 19, 20, 20, 20,
	}
)

var p434Tables = basisTables{
	U: Fp2{
		A: FieldElement{[7]uint64{
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		}},
		B: FieldElement{[7]uint64{
			0x000000000000E858, 0x0000000000000000, 0x0000000000000000, 0x721FE809F8000000,
			0xB00349F6AB3F59A9, 0xD264A8A8BEEE8219, 0x0001D9DD4F7A5DB5,
		}},
	},
	U0: Fp2{
		A: FieldElement{[7]uint64{
			0x000000000000742C, 0x0000000000000000, 0x0000000000000000, 0xB90FF404FC000000,
			0xD801A4FB559FACD4, 0xE93254545F77410C, 0x0000ECEEA7BD2EDA,
		}},
		B: FieldElement{[7]uint64{
			0x000000000000742C, 0x0000000000000000, 0x0000000000000000, 0xB90FF404FC000000,
			0xD801A4FB559FACD4, 0xE93254545F77410C, 0x0000ECEEA7BD2EDA,
		}},
	},
	RQR: [17]FieldElement{
		{[7]uint64{
			0x000000000000E858, 0x0000000000000000, 0x0000000000000000, 0x721FE809F8000000,
			0xB00349F6AB3F59A9, 0xD264A8A8BEEE8219, 0x0001D9DD4F7A5DB5,
		}},
		{[7]uint64{
			0x00000000000244DE, 0x0000000000000000, 0x0000000000000000, 0xA1CCD72326000000,
			0x407B7FF8496D02DF, 0xB402E5F8D9CA0493, 0x0000386AF88303BD,
		}},
		{[7]uint64{
			0x000000000002B90A, 0x0000000000000000, 0x0000000000000000, 0x5ADCCB2822000000,
			0x187D24F39F0CAFB4, 0x9D353A4D394145A0, 0x00012559A0403298,
		}},
		{[7]uint64{
			0x000000000003A163, 0x0000000000000000, 0x0000000000000000, 0xCF3B3CB737000000,
			0x4CBA127218F35AB9, 0x029D831F766AA763, 0x0000CB17C8A31D0A,
		}},
		{[7]uint64{
			0x000000000004158F, 0x0000000000000000, 0x0000000000000000, 0x884B30BC33000000,
			0x24BBB76D6E93078E, 0xEBCFD773D5E1E870, 0x0001B80670604BE4,
		}},
		{[7]uint64{
			0x000000000005E641, 0x0000000000000000, 0x0000000000000000, 0x710813DA5D000000,
			0x8D35926A62605D99, 0xB6A069185034ABF6, 0x00010382C12620C7,
		}},
		{[7]uint64{
			0x000000000007B6F3, 0x0000000000000000, 0x0000000000000000, 0x59C4F6F887000000,
			0xF5AF6D67562DB3A4, 0x8170FABCCA876F7C, 0x00004EFF11EBF5AA,
		}},
		{[7]uint64{
			0x0000000000082B1F, 0x0000000000000000, 0x0000000000000000, 0x12D4EAFD83000000,
			0xCDB11262ABCD6079, 0x6AA34F1129FEB089, 0x00013BEDB9A92485,
		}},
		{[7]uint64{
			0x0000000000089F4B, 0x0000000000000000, 0x0000000000000000, 0xCBE4DF027F000000,
			0xA5B2B75E016D0D4D, 0x53D5A3658975F196, 0x000228DC61665360,
		}},
		{[7]uint64{
			0x0000000000091378, 0x0000000000000000, 0x0000000000000000, 0x87335C8C98000000,
			0x01EDFFE125B40B7E, 0xD00B97E36728124D, 0x0000E1ABE20C0EF6,
		}},
		{[7]uint64{
			0x00000000000987A4, 0x0000000000000000, 0x0000000000000000, 0x4043509194000000,
			0xD9EFA4DC7B53B853, 0xB93DEC37C69F5359, 0x0001CE9A89C93DD1,
		}},
		{[7]uint64{
			0x00000000000AE42A, 0x0000000000000000, 0x0000000000000000, 0x6FF03FAAC2000000,
			0x6A67DADE19816189, 0x9ADC2987E17AD5D3, 0x00002D2832D1E3D9,
		}},
		{[7]uint64{
			0x00000000000BCC82, 0x0000000000000000, 0x0000000000000000, 0xE21027B4BA000000,
			0x1A6B24D4C4C0BB32, 0x6D40D230A06957ED, 0x00020705824C418F,
		}},
		{[7]uint64{
			0x00000000000CB4DB, 0x0000000000000000, 0x0000000000000000, 0x566E9943CF000000,
			0x4EA812533EA76638, 0xD2A91B02DD92B9B0, 0x0001ACC3AAAF2C00,
		}},
		{[7]uint64{
			0x000000000010563F, 0x0000000000000000, 0x0000000000000000, 0x27E85F8023000000,
			0x1F9BC84D2642124E, 0x684A3E4BD23840BD, 0x000043BC4C3AD5C6,
		}},
		{[7]uint64{
			0x000000000010CA6B, 0x0000000000000000, 0x0000000000000000, 0xE0F853851F000000,
			0xF79D6D487BE1BF22, 0x517C92A031AF81C9, 0x000130AAF3F804A1,
		}},
		{[7]uint64{
			0x0000000000113E97, 0x0000000000000000, 0x0000000000000000, 0x9A08478A1B000000,
			0xCF9F1243D1816BF7, 0x3AAEE6F49126C2D6, 0x00021D999BB5337C,
		}},
	},
	RQNR: [17]FieldElement{
		{[7]uint64{
			0x000000000000742C, 0x0000000000000000, 0x0000000000000000, 0xB90FF404FC000000,
			0xD801A4FB559FACD4, 0xE93254545F77410C, 0x0000ECEEA7BD2EDA,
		}},
		{[7]uint64{
			0x0000000000015C85, 0x0000000000000000, 0x0000000000000000, 0x2D6E659411000000,
			0x0C3E9279CF8657DA, 0x4E9A9D269CA0A2D0, 0x000092ACD020194C,
		}},
		{[7]uint64{
			0x000000000001D0B1, 0x0000000000000000, 0x0000000000000000, 0xE67E59990D000000,
			0xE4403775252604AE, 0x37CCF17AFC17E3DC, 0x00017F9B77DD4827,
		}},
		{[7]uint64{
			0x0000000000032D36, 0x0000000000000000, 0x0000000000000000, 0x13ECBF2D1E000000,
			0xF07EC9EEF4AC5C89, 0x86678EA198B886AC, 0x0002124847FD6173,
		}},
		{[7]uint64{
			0x00000000000489BC, 0x0000000000000000, 0x0000000000000000, 0x4399AE464C000000,
			0x80F6FFF092DA05BF, 0x6805CBF1B3940926, 0x000070D5F106077B,
		}},
		{[7]uint64{
			0x000000000004FDE8, 0x0000000000000000, 0x0000000000000000, 0xFCA9A24B48000000,
			0x58F8A4EBE879B293, 0x51382046130B4A33, 0x00015DC498C33656,
		}},
		{[7]uint64{
			0x0000000000057215, 0x0000000000000000, 0x0000000000000000, 0xB7F81FD561000000,
			0xB533ED6F0CC0B0C4, 0xCD6E14C3F0BD6AE9, 0x000016941968F1EC,
		}},
		{[7]uint64{
			0x0000000000065A6D, 0x0000000000000000, 0x0000000000000000, 0x2A1807DF59000000,
			0x65373765B8000A6E, 0x9FD2BD6CAFABED03, 0x0001F07168E34FA2,
		}},
		{[7]uint64{
			0x000000000006CE9A, 0x0000000000000000, 0x0000000000000000, 0xE566856972000000,
			0xC1727FE8DC47089E, 0x1C08B1EA8D5E0DB9, 0x0000A940E9890B39,
		}},
		{[7]uint64{
			0x00000000000742C6, 0x0000000000000000, 0x0000000000000000, 0x9E76796E6E000000,
			0x997424E431E6B573, 0x053B063EECD54EC6, 0x0001962F91463A14,
		}},
		{[7]uint64{
			0x000000000009FBD1, 0x0000000000000000, 0x0000000000000000, 0xFB91CE1BAD000000,
			0x362AED5F9F9AB683, 0x3573E0B5A4517410, 0x0000876A0A6EF968,
		}},
		{[7]uint64{
			0x00000000000A6FFD, 0x0000000000000000, 0x0000000000000000, 0xB4A1C220A9000000,
			0x0E2C925AF53A6358, 0x1EA6350A03C8B51D, 0x00017458B22C2843,
		}},
		{[7]uint64{
			0x00000000000B5856, 0x0000000000000000, 0x0000000000000000, 0x290033AFBE000000,
			0x42697FD96F210E5E, 0x840E7DDC40F216E0, 0x00011A16DA8F12B4,
		}},
		{[7]uint64{
			0x00000000000C40AF, 0x0000000000000000, 0x0000000000000000, 0x9D5EA53ED3000000,
			0x76A66D57E907B963, 0xE976C6AE7E1B78A3, 0x0000BFD502F1FD25,
		}},
		{[7]uint64{
			0x00000000000D2908, 0x0000000000000000, 0x0000000000000000, 0x11BD16CDE8000000,
			0xAAE35AD662EE6469, 0x4EDF0F80BB44DA66, 0x000065932B54E797,
		}},
		{[7]uint64{
			0x00000000000D9D34, 0x0000000000000000, 0x0000000000000000, 0xCACD0AD2E4000000,
			0x82E4FFD1B88E113D, 0x381163D51ABC1B73, 0x00015281D3121672,
		}},
		{[7]uint64{
			0x00000000000E1161, 0x0000000000000000, 0x0000000000000000, 0x861B885CFD000000,
			0xDF204854DCD50F6E, 0xB4475852F86E3C29, 0x00000B5153B7D208,
		}},
	},
	VQR: [17]Fp2{
		{
			A: FieldElement{[7]uint64{
				0xB91B91B91B91BAE5, 0x1B91B91B91B91B91, 0x91B91B91B91B91B9, 0x0E6BB9DE0C91B91B,
				0x18879A47F2F0700D, 0x32C54E927DB88A64, 0x000040658CB2BA6D,
			}},
			B: FieldElement{[7]uint64{
				0x37237237237228D7, 0x2372372372372372, 0x7237237237237237, 0x8A63A78A7E723723,
				0xB7898A3899D52E3B, 0xD6D1EB429400CD35, 0x000030F2C1819FDA,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x9DF0A569883D6A65, 0x59DF0A569883D6A5, 0xA59DF0A569883D6A, 0x93172790C79883D6,
				0x298B605E3417DFB7, 0x081016F426986717, 0x0001AE3C15954874,
			}},
			B: FieldElement{[7]uint64{
				0x26FFB1636401381F, 0x726FFB16364013A7, 0xA726FFB16364013A, 0xEDF3527199364013,
				0xBDFF43E957D8E920, 0x074E1DFE3B43CAA6, 0x0001E902BD6A68C3,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xB29534AE62D85A79, 0x73A1CBC35EA5FE1F, 0x1FB29534AE62D85A, 0x19C5E5E8785EA5FE,
				0x6B6158A5E8F068E6, 0x0CECA7AEFD88C24A, 0x0000CF8664C37D4D,
			}},
			B: FieldElement{[7]uint64{
				0xC6092EF433268DDD, 0x7A7EB10D61508715, 0x15C6092EF433268F, 0x83BED59416615087,
				0xDA8AD203B0BCEA94, 0xDC0EF2686153C430, 0x0001217CC87DEA8B,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xA1597A9A1597A9A3, 0xA9A1597A9A1597A9, 0x97A9A1597A9A1597, 0x47173487D07A9A15,
				0x3062918D06B8B8BB, 0x5EF6E4246C346412, 0x00005CDEB10B32FD,
			}},
			B: FieldElement{[7]uint64{
				0x5342B2F5342B2E6A, 0x2F5342B2F5342B2F, 0x2B2F5342B2F5342B, 0x4305EAA744B2F534,
				0x71C32BD0E142A474, 0xE23E2A390CBEBE56, 0x00020B54D66A6931,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x31D09D29093CBD5A, 0xA279F28F044339E9, 0x1C3591FDDFA2ABE3, 0x7A95272488FA8224,
				0x7A5F257CDC0C28BB, 0x2F3DFE9FC01A2996, 0x0001366E89ECB66C,
			}},
			B: FieldElement{[7]uint64{
				0x79FC8C0827902CB2, 0x2ED4817F4D755A6E, 0x26199D587B0F39F3, 0xA3A0E2151F79A526,
				0x1386C93E197B9F03, 0x6B7E90520EBF0D2E, 0x0001E10076731598,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x5DD68140F43AA56B, 0x4AA53DAEB55472EF, 0xA60F1009929BD460, 0x3D4DD25C8193C341,
				0x35733EAA8A1EA07B, 0x99783B0926D5C757, 0x0001D6A91F47E8D5,
			}},
			B: FieldElement{[7]uint64{
				0x1AC9583D8A91979F, 0x71D48F5496803FF6, 0xC01CD35C6E4198DD, 0x941E3BB5DBE83352,
				0x421F7BB430992C92, 0xDA40000C2EA98E76, 0x00023324E9FB029F,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x952DEB9E62D9C2BE, 0x7B98EE26B6AE484E, 0xA57575A4B923F963, 0x7F6E921069A934B5,
				0x0D34628FB53F37E0, 0x84CD034670F66804, 0x000233E185011583,
			}},
			B: FieldElement{[7]uint64{
				0x2E520464D0564CC2, 0xF0B64C978A80BE93, 0x6CCC6215FCC6ED62, 0x3727B865F5F6FDE0,
				0xA5963EE8317E2563, 0x3AEEFD45F2BC2A1D, 0x00008B27F67FAD8C,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x6B7A7DCC7F3B44FC, 0xBA2952F78F79D85C, 0x58AA10FC845A4938, 0x38607CDC19E40DE8,
				0xF782E6EB3A1CBDE0, 0x98DAE7F75A012666, 0x0001E9CFDCCA840A,
			}},
			B: FieldElement{[7]uint64{
				0xF1F1925DF1F95FED, 0xC765FD5CD394560F, 0x918500D0FB76A868, 0x5C3B831FAFBCCBDF,
				0xB1E4D8E96D477318, 0xC4EB9AA3919CE98F, 0x0000CA5C17F444A8,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xF505266D38669368, 0xAD2B0AFD3D136E5D, 0x3CA7F0C0A4792B2B, 0xF6CC2F16221333E8,
				0x74FDE820A0C50733, 0xD749F43FD6060D30, 0x0000FF30BAB231A0,
			}},
			B: FieldElement{[7]uint64{
				0xF7799FF6EEB44369, 0x9C9B01C9BF32BB02, 0xEE5B00B022443ED1, 0x16418A8BDAD79B04,
				0x264771819C98C2EB, 0x07CB8EF625BB1BCE, 0x0000DC5C646444C8,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xA52C6022C70D3B7D, 0xF9B79B1003C84AFA, 0x0765C85B2883915A, 0x3C54570B229D2FC2,
				0xA59E1613FB354422, 0x88D1CAF4B3C2622E, 0x00009178DE51F8AB,
			}},
			B: FieldElement{[7]uint64{
				0xD5539351F6A61891, 0xA23B6DF42E15B0BB, 0xE1EDE32164D9C3B3, 0xA7DECA9161CAC1A8,
				0x875FC6BEE0404B9D, 0x907741C12EF25428, 0x00018B79DBCD1C48,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x18A1E0F1292838F7, 0xBAE67B6B45CF66EC, 0x2982C916B06A06F1, 0x9A53622D7C86DA5A,
				0x9314B3E18DD3A3B7, 0x36BB18009CF1A383, 0x0001BFC9236F3E65,
			}},
			B: FieldElement{[7]uint64{
				0x22470120336BBA45, 0x11EAC8697B6F6693, 0xFB672FD432B4132A, 0x27792DC88E63B55C,
				0x30D776047CAC287C, 0xDE79BC44A0443180, 0x0001F651F5F1A9A7,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x3E09917AC9688DC1, 0xEC94402B3F3397BE, 0x56025A9144380945, 0x00A1AE22A2253250,
				0x891F8847B8B78A7D, 0xDA0443EFF16C706F, 0x00022368A03A9304,
			}},
			B: FieldElement{[7]uint64{
				0xD4F15775A9821722, 0x64DF3D6397D527E8, 0xF568724D03D64557, 0x5B53D0D1B29D967C,
				0x7E629228475B7DAB, 0xE2F8D30C52E943C7, 0x0000493BB0D3CEFE,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x57EF7EC9AC7CE353, 0xB563E360103A5DD6, 0xC42C5BD044455DBC, 0x41EA4366B0C69229,
				0xE97382F193D45A27, 0x8B63E6E956D7C174, 0x000190B9B4F7F000,
			}},
			B: FieldElement{[7]uint64{
				0x972A66E90C6F6DE7, 0x08772CAA4BC06BFF, 0xF5BB1C1771A8F362, 0x7609CCF88A4C136B,
				0xB995935C846B7647, 0xF7C843EA8188B335, 0x0001542E019C30FC,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x4246FA13382275B5, 0x4734FBDCE5228591, 0x4024F01C044310A0, 0x764F2B4888774196,
				0x7F3EFA9545B4D464, 0xCD48FEF1A7C24D0E, 0x0000371FB2198997,
			}},
			B: FieldElement{[7]uint64{
				0x0D444A482CEF0AC6, 0xDB7957048C8DE64A, 0x1DC15465E53A2A4B, 0x017829A8B38E47B7,
				0x1394CE02BBC42752, 0x30B81EE68A7D7B3B, 0x0001B89AA7B09560,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x91E8F43CA01721C0, 0x39ABE9BE4138C9F2, 0x342B58F5DC8FD7C4, 0x8BEBB3AD3C59CBD4,
				0x014A504F2E2D58BF, 0x63B43021EDEEB875, 0x00000CC6FC5A0F66,
			}},
			B: FieldElement{[7]uint64{
				0xA9571A2B15CA47C5, 0x136159ABA10347FA, 0xC91B46A6CF975D38, 0xC91B144F43D03B6F,
				0x764A2DFFD44DAC62, 0x9DC2BEE6D762D341, 0x0000A472F28BA413,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xE22367F18819D3B6, 0x581661D0BA67F352, 0xBB446CC1C435EC24, 0x234DE0F57175551C,
				0x22DCB9526AB8B42A, 0x9B132D68572887FF, 0x000106208C8243C0,
			}},
			B: FieldElement{[7]uint64{
				0x61524ABE5BC5AA7B, 0xE09DD59654379389, 0x1E2CCF9B77486349, 0x401627FB5217B2B5,
				0xA0ABBE33F68582CB, 0x5FDCEBB71DBF474A, 0x0001A6CA9A638D47,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x0743A7ADEC4CBEB9, 0x47D5F3C3612D8380, 0x2AB1A136944C1875, 0x1A465F3FB9F85ABF,
				0xEE93D67ED7FD59F4, 0xAECA171A0F106B4E, 0x000058273E8B0400,
			}},
			B: FieldElement{[7]uint64{
				0x0CC45DEE3E386734, 0x9A5A0BDFB68C83AE, 0x5C1D5047058C14ED, 0x9FB2AA0ED2404366,
				0x166F7D427E758FC3, 0x95C498C32ED2863F, 0x00018C4775225D1C,
			}},
		},
	},
	VQNR: [17]Fp2{
		{
			A: FieldElement{[7]uint64{
				0x6666666666667DA2, 0x6666666666666666, 0x6666666666666666, 0xBDB6F9CBC0666666,
				0xC31C792F24DD0205, 0x27089D99E099E6BE, 0x00011108FDFC0447,
			}},
			B: FieldElement{[7]uint64{
				0x33333333333304BB, 0x3333333333333333, 0x3333333333333333, 0x825382E362333333,
				0xF58D6A19E79EAA98, 0x1EEB24A2C09152D8, 0x0000120D2B1F6AB6,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x8B6BE9F1D2505894, 0x38B6BE9F1D250583, 0x838B6BE9F1D25058, 0x9C0909AB631D2505,
				0xEA75FE266DA83956, 0xB98D22E1CCB2BBBE, 0x00007DB423F53C56,
			}},
			B: FieldElement{[7]uint64{
				0x32698CFF3659C593, 0x032698CFF3659CC0, 0xC032698CFF3659CC, 0xFC24A25976F3659C,
				0xEE93EFA540E7611C, 0x15016B5024486E43, 0x00022DF13C37023D,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x7722377223772254, 0x3772237722377223, 0x2377223772237722, 0x36D7BAAAFB223772,
				0x7AA4C5D72FC85655, 0x3369C65060D08696, 0x000104009788DC36,
			}},
			B: FieldElement{[7]uint64{
				0x1BB911BB911BB571, 0x11BB911BB911BB91, 0x911BB911BB911BB9, 0x035E9BD3E8B911BB,
				0xEC06B024EB2770F5, 0xF590D385807C1241, 0x00008DC059443A3B,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xE6111C7042F3A8E9, 0xA8E6111C7042F3A8, 0xF3A8E6111C7042F3, 0xE2F2B515761C7042,
				0x530947C450F471E0, 0xFE9688F7B8604C8D, 0x00005C0ECF10587A,
			}},
			B: FieldElement{[7]uint64{
				0xED731D065EB956BE, 0x57ED731D065EB957, 0xB957ED731D065EB9, 0xFB2E1576F91D065E,
				0xF2D84E5C17F75228, 0x5A258E938774B74D, 0x000004472D355531,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x3337C993650C0D08, 0xD089EDE9FF52557D, 0x7620D4C829513EF7, 0xDA1743C426DBF666,
				0xA107EC0033174F2C, 0xAD15D89173C23C09, 0x0000F99F9FB462F5,
			}},
			B: FieldElement{[7]uint64{
				0xFC6A84D90E95D167, 0x143E213087AD362F, 0xB659C39FB886CE65, 0xD6153F7A8F277FF3,
				0x39C5C5A13D9EDBF8, 0xAAAC1FF0ADC9568B, 0x00011A1FD239C2DA,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x87736309DDA6A943, 0x091F6A7837911C71, 0x0743D3FD9AC58005, 0xE763272C18E09F9A,
				0x26B8C4C17D8D30CA, 0xA460F26C8AFDB3DA, 0x00014E6984FF9B2E,
			}},
			B: FieldElement{[7]uint64{
				0xF4EC60AC7873FE1A, 0x604D5A5B78D31CAD, 0x21E19A43B14CFB3D, 0x01179D702BA92065,
				0x04EA04B3126A1C70, 0xEA50BE0D9B0E2C6D, 0x000131C643902465,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x8614211F80B1616D, 0xF7B81FD3A7A49E4E, 0xF80B1616D86C5E7A, 0x07BF548F41614211,
				0xC37DA826EB2AE8DF, 0xC0411FD8C5ED8C6F, 0x0001F341510F9157,
			}},
			B: FieldElement{[7]uint64{
				0x295ABC8F38726461, 0x50DC31E366CDE7A9, 0xF387264C8615B5A9, 0x0C75E33E8F95ABC8,
				0x5D38EFF0970FFA71, 0x461FA2CC981D3869, 0x0000418CBED84E70,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x87700C2E778D8075, 0x43A87500FA58EEAF, 0x9CE75275C96D2A5C, 0x5FA19F2E462F399A,
				0xDF0F017B7DD8C4F2, 0x280013794FEDAE61, 0x000094ED77FF8063,
			}},
			B: FieldElement{[7]uint64{
				0x9C6D58D8EF534C70, 0x660CD680A7D28338, 0xBDC9BBA390D722B8, 0xA71C6310BFAFCB3F,
				0xB99B4BBB58195F7C, 0x06691D6254221D44, 0x00012108224A3BF7,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x2195F504EC8CE821, 0x9D41075B38625AA5, 0x9014203CA406BB05, 0x6D62CB6D8B2DF2C3,
				0x1C86F3E3A5CCF863, 0x203E5B5903F00EDA, 0x000164F4C3C7C43C,
			}},
			B: FieldElement{[7]uint64{
				0xF6674D58304FF4E1, 0x93B111A6E31CA9BA, 0xBC9F5567AC2B4021, 0x38B75040103B443C,
				0xA69C3BA57D6DCDCB, 0xA75A1F558C7AE4E1, 0x0000906E5FF4617C,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x94129AFB594129AF, 0x129AFB594129AFB5, 0x9AFB594129AFB594, 0x2900F1CD82B59412,
				0x20D6A4CA5E4BAF82, 0x6793F3042CF7FB07, 0x0001D02041A5E76A,
			}},
			B: FieldElement{[7]uint64{
				0xDACA094D7DACA05A, 0xCA094D7DACA094D7, 0x094D7DACA094D7DA, 0x4B05B38CC6D7DACA,
				0x5BB2D964C0D0DE02, 0x801FF33FFAFD404E, 0x0001AAD724D92DFC,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xE166CDB3BE58BCD0, 0xE77C60E75642CDFD, 0x0C39472A9783BE7F, 0x96A7FC14FBC96ABA,
				0x5CC689CB13C56A4D, 0xC328410D8CB268EB, 0x0001A8A8A5004ABD,
			}},
			B: FieldElement{[7]uint64{
				0xB346305840760AA7, 0xB1B19541D3651803, 0xC76AE6F315D7AC5C, 0xF0B9349859647081,
				0xA9244A61C30F5B9B, 0x6A76EE9B87BC5C4F, 0x0000AF0668ACA050,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xADA031682113D6D1, 0x017CF7EC83494C4A, 0x33EF143065596ED1, 0x0276B5923C8389FE,
				0x0822C190F53979AC, 0x33C32FAC0249AB9F, 0x00011975648F1F39,
			}},
			B: FieldElement{[7]uint64{
				0x6FF3CFA74C02322E, 0xD98760896B12B35E, 0x5DEE8FFD24640437, 0x3069F716185FB36D,
				0xA97ABED04F5F5959, 0xDBDAA58A321B6B1F, 0x0000491708DEB2B8,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xA6D19EFB46E8A47A, 0xB4DDF0D82FF93FF2, 0x7EF791FD729C9B0F, 0x1CBEBA7707E84CC6,
				0xE949FCCBE6E9F9A6, 0x085AFF3FCD75590B, 0x0000F96FFCFE49F3,
			}},
			B: FieldElement{[7]uint64{
				0x7475B90FC40CE223, 0xDC4E0065C0F5C12D, 0x0B2928765F52DD4E, 0xCB9E763FBEB91EC8,
				0x44396405161C4326, 0xA0D8B0D51BD60EA8, 0x0000A27A2002EA20,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x49EC0E19DF71A633, 0x2A457AC271C844D8, 0xDBF40F545519A32C, 0x318D60D527180CFE,
				0x19A398A08B929CDA, 0xCF17763B94DCBD5B, 0x0001DD4F8A136584,
			}},
			B: FieldElement{[7]uint64{
				0xFD97B0A56ABB6CB8, 0x404AD893F967E82A, 0x4C00B1B353FCAE77, 0xF75B9E618F05FC7F,
				0x9C6E7902F4787FCE, 0xE4E698A7B7077008, 0x0000CF2A0C917171,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xC0BAAADC355770BB, 0x9D7581EB3277D7EA, 0xCDBA0DAFF2A59F6E, 0x3E461B402A9B65B2,
				0x05F0D156E1A7A3ED, 0x69A1891EBDCC6A7C, 0x0001281AFCFED68C,
			}},
			B: FieldElement{[7]uint64{
				0xB5896529877D4FE7, 0x71F064AE68975B99, 0x4F9211F7BBCE7B39, 0x19AC9E4507FDCF34,
				0xE4F185BB956F52E1, 0xE327A4E691DAE76D, 0x000046219384EE75,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x1B49FE6D324A903E, 0x4E33D89D1655631F, 0x1E1C101410671389, 0xE332832DFB6C742D,
				0x38CDD49E02180B90, 0x1279178D8097B588, 0x000119E5683A4805,
			}},
			B: FieldElement{[7]uint64{
				0x1FBB103663B9C88C, 0x2374EF7AF79F0D48, 0x4AAEF2ECAB3EA292, 0xA0FA2CB6396F22C4,
				0xBE1E1F8EC2B4A5CA, 0x43D353300E514A3B, 0x0001288094A6D8E5,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x998BF5138DDDD5D2, 0xD1F015AF4EA7BF66, 0xE3DAF7886068D9AD, 0x99E9067025D583AF,
				0xCC498E253E868EF6, 0x618AE02455C9B20A, 0x0002322145632832,
			}},
			B: FieldElement{[7]uint64{
				0x333A0330E480A5E0, 0xD37D31D37894FFB3, 0x4E09921C2CCDB4FD, 0xAC7069BEE6F95173,
				0xA05EDFF1E57DBBEF, 0x5C3678A72B135234, 0x0001BB5DA10EE9DF,
			}},
		},
	},
	V3Torsion: [20]Fp2{
		{
			A: FieldElement{[7]uint64{
				0x999999999999BC73, 0x9999999999999999, 0x9999999999999999, 0x9C9276B1A0999999,
				0x24AAB5C6B74B8308, 0xBA8CEC66D0E6DA1E, 0x0001998D7CFA066A,
			}},
			B: FieldElement{[7]uint64{
				0xCCCCCCCCCCCCC12E, 0xCCCCCCCCCCCCCCCC, 0xCCCCCCCCCCCCCCCC, 0x1EE5F99502CCCCCC,
				0x1A381FE09EEA2DA1, 0xD978110991782CF7, 0x0001AB9AA8197120,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x41FAB8BE05474CC2, 0x054741FAB8BE0547, 0xB8BE054741FAB8BE, 0xC9AE7F39FF4741FA,
				0xB1F4EE9D1CDDE556, 0x1650D500E95EBA31, 0x00005023E95DDE16,
			}},
			B: FieldElement{[7]uint64{
				0x54741FAB8BE04FA9, 0x8BE054741FAB8BE0, 0x1FAB8BE054741FAB, 0x16655C7EB0E05474,
				0xD849DDDEC437B020, 0x2E677A183619E2D7, 0x00019324B6AFA19D,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x8536718536718A34, 0x3671853671853671, 0x7185367185367185, 0x88EBEF311A718536,
				0xA7D32684ABC9D6E9, 0x86FFA027C5EA41ED, 0x0001EF2D26807E04,
			}},
			B: FieldElement{[7]uint64{
				0x8B01288B012888A3, 0x01288B01288B0128, 0x288B01288B01288B, 0xF2CAF7B478288B01,
				0xB30406DB0864DD0C, 0x7DE19AB6317E9551, 0x0001499080A4B0D6,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x497819E2B03FF6AB, 0x43C254E3A3E0C8FE, 0xA1F98753F0030B9C, 0x9D08AFDF66CDC06D,
				0xDC9B4D2060AC66D4, 0xAA1B0432076D8C12, 0x00008C728C65FAC7,
			}},
			B: FieldElement{[7]uint64{
				0x7787B5638B83E57E, 0x4BC0CF1581FF9E8C, 0x1E12A71D1F0647F2, 0xF874D414C6185CE2,
				0xB1C3CEFB8EF40E5E, 0xD974CD64813E2AD0, 0x0000EF9B64A50B19,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x4FAC336C14F326D0, 0xF324FAC336C14F32, 0xC14F324FAC336C14, 0x7A441A68B4FAC336,
				0xF55ABB9E02E51BCD, 0x7DF241E5CC125D82, 0x00020CD99B418553,
			}},
			B: FieldElement{[7]uint64{
				0x79927D619B60A6B2, 0x60A79927D619B60A, 0x19B60A79927D619B, 0xC1836ABCD19927D6,
				0x056ED5F9FA770E50, 0x938A248852AF05FF, 0x000180454EC85AD4,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x8FC8F97836B765C9, 0x79F3DDD74597E657, 0xF40F4D525855A12C, 0xB504F4CAE1D399D4,
				0x5B3EBD1F2ED83FF2, 0xE84645130B2D0DBA, 0x0000DA2062334ED3,
			}},
			B: FieldElement{[7]uint64{
				0xC71EA489199E8B2C, 0x4CA048F486023DBF, 0x7D1F0775331F6A61, 0x238045677D90A29A,
				0xA9A61EA8DBC1A3F4, 0x7D71C1C648CD9742, 0x0001075C2F69D7C4,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xC3A939DD014D003A, 0xA92F1F17B5248C25, 0x7399C8DD37028F40, 0x78F15EE9E1AEC3C9,
				0x9C6EC31DE809B64F, 0xADC32BB57B097A2B, 0x000182925F9D25CA,
			}},
			B: FieldElement{[7]uint64{
				0x37B92BC3BEB5AFB9, 0xC389002039BCC790, 0x769F328FEC87C89C, 0x45F48B81136118A1,
				0x771813745D6BBD3E, 0x1DB0C12AB3EBFB1D, 0x00014733DD55FF54,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x8D3D7757053F25DE, 0x1BB0A5534AD2D44F, 0x6A5D806D0822AA3D, 0x81D30F00C5FE0658,
				0xDD7EDBA5455F0CBF, 0x321F8C3287B5561C, 0x00010C3B9266397A,
			}},
			B: FieldElement{[7]uint64{
				0x58AFE48B66934683, 0x2BD00D3BE2D0F3F0, 0x366476DBC465DF23, 0xCF46D882997C04CA,
				0x100047EAE7B1B0CA, 0xE98B984D9BA8857B, 0x00019D8D87E9F5E7,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x16255E514230CE8B, 0x4CEE6DB1C53E2C2B, 0xE69FC4293B640916, 0xBEDB813769959101,
				0x75374AFDF84FA267, 0xA08A7C370DEA787F, 0x0001C42814BBDFF3,
			}},
			B: FieldElement{[7]uint64{
				0xCA970CCFC4688815, 0xB0EF9A5F6A27C77F, 0x57FF227293F58D8B, 0x2782596E2D3675FA,
				0xF3B4D13FBB928B8E, 0x5F9B384AE0301D97, 0x00015DD020A61A84,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xB9758CA6605A88DC, 0x9B0E00E773B0BE3F, 0x8D1CB3F2BBA35FE1, 0x5BD852F804F988BA,
				0x5AB812185EC1F54A, 0x81EE7303B3B11EF8, 0x000167A5C4B8EC00,
			}},
			B: FieldElement{[7]uint64{
				0x537E31BF0E7887B0, 0xF28A3A23236AEF0A, 0x49B722040DA1FB99, 0x89C14F4BF6ADE22F,
				0x8303646A89C2A6D6, 0x4446EB8898043332, 0x0001C1BE6A2BAA3F,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x60904BED92E6F0A1, 0xB75830F83D32BDCE, 0x5303D79E3A35E71C, 0x057F1D1FBF1F6424,
				0x09D29AFFCD4B9F82, 0x0DE6CF6ECF1EDB33, 0x0001B330E4A5A838,
			}},
			B: FieldElement{[7]uint64{
				0x09DBF7B0AE6C58C5, 0x45E3E366E4AFF3A9, 0x29E3BFD3FA3102E9, 0x4F66726AC8918DDF,
				0xAC46D1291B0F682A, 0x197E0510E123E22F, 0x000141E2A18F39E4,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x0611E67F5AFE0C95, 0x73F50769BEADF858, 0x5FF1EF605FF0AD88, 0xC80A90794F63FDDE,
				0xA435619598EC3001, 0x34AF362A0C54F5EA, 0x00017A9719011B55,
			}},
			B: FieldElement{[7]uint64{
				0xE183ECD15F816A3A, 0xF6F117C4395997BE, 0x67AAE2316B369528, 0x0618723D3BFE02D5,
				0x947CE54AACCA22AF, 0x4963179F500215D8, 0x0000A69EB2B134C5,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x4512C7CB549E0613, 0x58B3138052AC291F, 0xBDB21A1D0DC8E1F3, 0x08F33DE426C49F38,
				0x78ED469B002924BC, 0x94FBCA884C534ECE, 0x00016411608F666E,
			}},
			B: FieldElement{[7]uint64{
				0x76DCF643092ACD65, 0x87827A6E7863F18A, 0x5FBB99DF645C6BDD, 0x26E3468335753344,
				0xC6BB91D8121B199B, 0x3BC17926E87E395D, 0x00007D5A5FF0E692,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x2CD377F7AF7A3996, 0xFE915A6848EB6335, 0xE2796F2ACB922496, 0xD5FEAE7013EC2D63,
				0x1B264179788453F2, 0x3A50528DF123CA80, 0x00003C2B61484D9B,
			}},
			B: FieldElement{[7]uint64{
				0x0CD1CFE4E128028C, 0x7E6F33F849117206, 0x422F91D71D67A4CB, 0xA9C6E809C409E2D9,
				0xD3D9B2D66BAC46C7, 0x68CEEB5277B8DDD3, 0x0000381E05A78010,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x4F4EBAA4A85CBB5A, 0x00F6A3476ECCE55C, 0x6DF6C3C9230F72FA, 0x0DCB283C6564F0BA,
				0xA82B8AC12EDC42E9, 0x5FBD7E3CB399C776, 0x0000FFF6BD7C7E3E,
			}},
			B: FieldElement{[7]uint64{
				0xDC68551ECFC41D23, 0xC237308737FA469E, 0xE6A81586A6FCD565, 0x3DED4572B5A03B45,
				0x6946056BDF996305, 0xE2F1389B1D6CF35C, 0x00010CD02839AEB3,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xA5959A668F12A176, 0xB310CEBDA555CD7D, 0x078B28C38E9A01DF, 0x6197E0DCCE65322A,
				0xA8D2A1E798A9702A, 0x753603AD399F0CAA, 0x000105A74C730C51,
			}},
			B: FieldElement{[7]uint64{
				0xC8D0CA6784B4551A, 0x45D4AE4A0850F0C8, 0x391DDCAFE0C29DC1, 0x8270BF6B173AC986,
				0x73770F0EAA80DDEF, 0xBB7C9EE74BD61C23, 0x00007A592BC0228D,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xA302403B141A0385, 0x9188DF46965BF724, 0x666234B05EB3A268, 0x37AB02DCD5D0FB01,
				0xED9FA4ABF47BF81A, 0x31B87D353910E9E3, 0x0001E931A394CEF8,
			}},
			B: FieldElement{[7]uint64{
				0x9E46F21160F6FEAF, 0x6359F8041E2E0FEA, 0x4AE82F18B6A502F1, 0xCC2D17C159C53B16,
				0xDC5076C57AEF74C5, 0xA4D66592DBF0E267, 0x000012E32E3B2202,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x9237E2347B57BBD8, 0xE16C142FE156484A, 0x087E8A48B3B14220, 0x34B6225A95A547ED,
				0xD26CBF294A3E2E72, 0x33C06874E35A7F57, 0x00017DFC7A25D7B7,
			}},
			B: FieldElement{[7]uint64{
				0x91ECC77A8220B97E, 0xBD3818A24751F785, 0x2E3FD75D7AE703AB, 0xD7E8692B70CA482C,
				0x53C8B5DDEBA21D6D, 0x5FC1E218D7085E99, 0x000129CD0E49FE6F,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x3945471CC48EF6BB, 0x7C3FB717D0165DC8, 0x92F83793BFEBC75A, 0xD5BF95D93BFE5316,
				0x0209E198DB1F16A4, 0xE2086C62914F403A, 0x000019D6352AA2CC,
			}},
			B: FieldElement{[7]uint64{
				0xBFFF0BF092E15611, 0xFA429EEA322007B3, 0x99EFB4184EBBD84C, 0xF6C5230835D383A8,
				0xF1CD8283C93674AF, 0x41C64F9EA1AC8458, 0x00002CD68D0A2571,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x570C567E928211B1, 0x70459EE4560443C6, 0x1FC204B885DBB2C0, 0x7C99D3BCAF19BE0E,
				0x5BFFD67B5AA530E7, 0xF8701F7AE35B9C57, 0x0000F056DF1DFCBE,
			}},
			B: FieldElement{[7]uint64{
				0x4183962A42D28AD1, 0xFF8B6A5752A5FAEB, 0xA4B714F92FE41B11, 0x8CC5D5EEFFAFB58B,
				0xA53A15C837E4CFC9, 0x1A79CF6122569F16, 0x0001FE4DB81AE342,
			}},
		},
	},
}

var p434Zero = zeroCurveConstants{
	AliceWeierstrass: [4]Fp2{
		{
			A: FieldElement{[7]uint64{
				0x6E18D3A633148F91, 0x1DCC496DD6DDE298, 0xA35F3F7DAFBE2B43, 0x3B18175B7C0071EB,
				0x62E0C886CC6A1260, 0x75482A45DD52E0F9, 0x0001C5C62D4E6CBE,
			}},
			B: FieldElement{[7]uint64{
				0xB999E9E259F7BFA8, 0x2584D67D0C2EEAA9, 0x80AB07D4E9625724, 0x781DA616A7A76E54,
				0x9BE449736374F491, 0x8C6F86E8B0C4D74A, 0x0001C1D4812CBD98,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x9B989BE60CFF0D15, 0x8B80A32171813F53, 0xF4F067606A56228E, 0x48F8237E159577B0,
				0x42529574B9E74156, 0xD8D26313F4AA9F9C, 0x0001279AC6BC876C,
			}},
			B: FieldElement{[7]uint64{
				0x9597544CBE9D88DF, 0x13801F440DF32748, 0xE4ECAFF9C15D0CEB, 0x7867D92EB045A646,
				0x02399062BA8C64EF, 0xE9258C0BDF8BBFF7, 0x0001CE4BBF872205,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x257DBD530960BABC, 0xBBB3C7A7B4EDB1D4, 0xA817B7FDDD5BB8DA, 0x6A3D07CA392B7AB3,
				0xB38EA2B4A9AFF7BC, 0x4D3A923D8F9760D9, 0x00018F20F7CBFBFE,
			}},
			B: FieldElement{[7]uint64{
				0xED9DC89467FB039D, 0x17C71E114B5803D0, 0x816C3379BE9647BF, 0xB07F441A15434B64,
				0xCC65C1804AF4CBD1, 0xF06BF5F074032C77, 0x0001A251F94CF02C,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x6239F7D1AD27CE42, 0x717E2E83920EF08C, 0xAA9328D01C5FDF24, 0x824E9DEA2B1F02F9,
				0x20B1D0984E195350, 0x4A5AFBFD02EF9414, 0x000228BCA648BAFF,
			}},
			B: FieldElement{[7]uint64{
				0x7DEDAD20B53F2C9A, 0xE7DD8746364EACC1, 0x743BABC72A5096D4, 0xDDA2FBF4E96A5174,
				0xE05A5B3B71083AF0, 0x69AB2A817C72ADCC, 0x000216CFFC723E3C,
			}},
		},
	},
	BobBasis: [4]Fp2{
		{
			A: FieldElement{[7]uint64{
				0x214C34BB192F67A0, 0x0DD49D3D02115D30, 0x0700652C1A7B66ED, 0x1F856B48F4FF0024,
				0xFBDE6F4E6A705221, 0xB951A3D6C93D87B8, 0x0000AE8ADB818ED6,
			}},
			B: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x51D889FE197209C1, 0x191BCD9DBE4FE0EF, 0x447818CF5E54DD8A, 0x3F42710E8562A583,
				0x647BDBB01C66DCB5, 0xF402D36C15EA12E1, 0x0000A1E1D287C14C,
			}},
			B: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xDEB3CB44E6D0985F, 0xF22B62C2FDEEA2CF, 0xF8FF9AD3E5849912, 0xDE3C0B31EE00FFDB,
				0x7FE7ED29C6E85C82, 0xB3AABBFFB887989D, 0x000185944B95E46D,
			}},
			B: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
			B: FieldElement{[7]uint64{
				0x51D889FE197209C1, 0x191BCD9DBE4FE0EF, 0x447818CF5E54DD8A, 0x3F42710E8562A583,
				0x647BDBB01C66DCB5, 0xF402D36C15EA12E1, 0x0000A1E1D287C14C,
			}},
		},
	},
	BobThreeTorsion: [8]Fp2{
		{
			A: FieldElement{[7]uint64{
				0xD697601DCA7CA4B5, 0xD16726DCBE0FD988, 0x8119DD7AF0E6C87C, 0xD1E1BDAB620C8DF9,
				0x27ABDBB336AF35D0, 0xC36900B91B5F4914, 0x0001E21CCC021AE9,
			}},
			B: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xDAEB901A8B0B1BF6, 0x00CFA413FEE3DEEB, 0xD8A152FC022EDD7F, 0x69AEE6F393ADDBE5,
				0x45F3B54D85AB6DDE, 0x19F7181A0B697BAB, 0x0000E1C0ED0125C4,
			}},
			B: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x29689FE235835B4A, 0x2E98D92341F02677, 0x7EE622850F193783, 0x2BDFB8CF80F37206,
				0x541A80C4FAA978D3, 0xA9935F1D6665D742, 0x000052025B15585A,
			}},
			B: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
			B: FieldElement{[7]uint64{
				0xDAEB901A8B0B1BF6, 0x00CFA413FEE3DEEB, 0xD8A152FC022EDD7F, 0x69AEE6F393ADDBE5,
				0x45F3B54D85AB6DDE, 0x19F7181A0B697BAB, 0x0000E1C0ED0125C4,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
			B: FieldElement{[7]uint64{
				0xFC42C90C960A3D15, 0x815F603FE9413385, 0x640A06136E6DF1BA, 0x71E4C95A57555FE7,
				0xBF7BAC5BE8654D6F, 0x27CD8B340B46A743, 0x0000259C6CF43995,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xFF585E4DCB517F6A, 0xEFFCE64BA91FBE1C, 0xFAEB260583830D6E, 0xEB68E9A0F32E8E96,
				0x419A555BABEC214B, 0xBA7A5BFD1EA7D14F, 0x000220892411AA66,
			}},
			B: FieldElement{[7]uint64{
				0x00A7A1B234AE8095, 0x100319B456E041E3, 0x0514D9FA7C7CF291, 0x12588CD9EFD17169,
				0x3A2C071C856C8D58, 0xB28203D9631D4F07, 0x000013960305C8DD,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
				0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
			}},
			B: FieldElement{[7]uint64{
				0x03BD36F369F5C2EA, 0x7EA09FC016BECC7A, 0x9BF5F9EC91920E45, 0x8BDCAD208BAAA018,
				0xBC4AB01C48F36134, 0x452ED4A2767E7912, 0x00020E82BA2339AF,
			}},
		},
		{
			A: FieldElement{[7]uint64{
				0xFF585E4DCB517F6A, 0xEFFCE64BA91FBE1C, 0xFAEB260583830D6E, 0xEB68E9A0F32E8E96,
				0x419A555BABEC214B, 0xBA7A5BFD1EA7D14F, 0x000220892411AA66,
			}},
			B: FieldElement{[7]uint64{
				0xFF585E4DCB517F6A, 0xEFFCE64BA91FBE1C, 0xFAEB260583830D6E, 0xEB68E9A0F32E8E96,
				0x419A555BABEC214B, 0xBA7A5BFD1EA7D14F, 0x000220892411AA66,
			}},
		},
	},
	BobQ3: Fp2{
		A: FieldElement{[7]uint64{
			0x821E631A922B742C, 0xDA3EB61A6B066600, 0xBE9BF948971BD406, 0xAEF5D42FAF04075A,
			0x70165C6A99378F7F, 0xEEE1058485DD1F9A, 0x0001B20B9F7D4D95,
		}},
		B: FieldElement{[7]uint64{
			0x787CA8B336944EF3, 0x0D29EBA9AF11A6EB, 0xE0BC6DA29BB99844, 0xF583F3C8DA2FB5FA,
			0xBBCB2EAAD861B7E8, 0x2487A88C3E782D0A, 0x00011BA37E3442A5,
		}},
	},
	GRSIm: FieldElement{[7]uint64{
		0x410F318D49162E42, 0x6D1F5B0D35833300, 0x5F4DFCA44B8DEA03, 0x908ADE1CD38203AD,
		0x100CD330A23B7494, 0xE0A2D716A265D0DA, 0x0001C5F4777BD5A5,
	}},
	GPhiRPhiS: Fp2{
		A: FieldElement{[7]uint64{
			0xE3F6DD5BAE3DA160, 0x893B9874EAD27B9A, 0x0AEB72FD8BCC2583, 0x02FFCCC8FAFA395E,
			0x2303AE01DD252409, 0xC6AD33482DFD53FA, 0x0000978AD00D3221,
		}},
		B: FieldElement{[7]uint64{
			0xC728DE8E32AF6622, 0xF179EECB0D4F3D28, 0x37CA8F90B93772D7, 0xA349AE99A7B40196,
			0xD81D98E9D4891BF8, 0x4767F6BC20C22291, 0x00019AF8C13C99B8,
		}},
	},
	ThreeInv: FieldElement{[7]uint64{
		0x5555555555557C0E, 0x5555555555555555, 0x5555555555555555, 0x3C30F5A8EB555555,
		0x9A84C9F93D7058B4, 0x410E5C007655D5E8, 0x0001C70EFCA40721,
	}},
}
